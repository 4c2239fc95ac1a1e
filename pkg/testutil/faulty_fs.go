package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/renumber/pkg/types"
)

// FaultyFS wraps a types.FS and fails renames of selected source files
type FaultyFS struct {
	types.FS
	failures map[string]error
	renames  []string
}

// NewFaultyFS wraps inner with no failures configured
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{FS: inner, failures: make(map[string]error)}
}

// FailRename makes renaming the file with the given base name fail with err
func (f *FaultyFS) FailRename(sourceName string, err error) *FaultyFS {
	f.failures[sourceName] = err
	return f
}

// Rename fails for configured sources with a *fs.PathError, otherwise it
// delegates to the wrapped filesystem
func (f *FaultyFS) Rename(oldpath, newpath string) error {
	f.renames = append(f.renames, filepath.Base(oldpath))
	if err, ok := f.failures[filepath.Base(oldpath)]; ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: err}
	}
	return f.FS.Rename(oldpath, newpath)
}

// RenameCalls returns the base names of every source passed to Rename
func (f *FaultyFS) RenameCalls() []string {
	return f.renames
}
