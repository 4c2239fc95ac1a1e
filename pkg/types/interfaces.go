package types

import (
	"io/fs"
)

// FS is the filesystem capability the core depends on. It covers exactly
// the primitives renaming needs: listing a directory, testing existence
// and performing a single-file rename.
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks. For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir returns the directory entries sorted by name
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename moves oldpath to newpath
	Rename(oldpath, newpath string) error
}
