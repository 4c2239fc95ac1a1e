package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/renumber/pkg/types"
)

// CaseInsensitiveFS wraps a types.FS and resolves path lookups ignoring
// case, emulating the default macOS and Windows volumes on top of a
// case-sensitive backend.
type CaseInsensitiveFS struct {
	types.FS
}

// NewCaseInsensitiveFS wraps inner
func NewCaseInsensitiveFS(inner types.FS) *CaseInsensitiveFS {
	return &CaseInsensitiveFS{FS: inner}
}

func (c *CaseInsensitiveFS) resolve(name string) string {
	dir, base := filepath.Split(name)
	entries, err := c.FS.ReadDir(filepath.Clean(dir))
	if err != nil {
		return name
	}
	for _, e := range entries {
		if e.Name() == base {
			return name
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), base) {
			return filepath.Join(dir, e.Name())
		}
	}
	return name
}

// Stat resolves name case-insensitively
func (c *CaseInsensitiveFS) Stat(name string) (fs.FileInfo, error) {
	return c.FS.Stat(c.resolve(name))
}

// Lstat resolves name case-insensitively
func (c *CaseInsensitiveFS) Lstat(name string) (fs.FileInfo, error) {
	return c.FS.Lstat(c.resolve(name))
}

// Rename resolves the source case-insensitively. A destination differing
// from an existing entry only by case replaces it, as on a real
// case-insensitive volume.
func (c *CaseInsensitiveFS) Rename(oldpath, newpath string) error {
	return c.FS.Rename(c.resolve(oldpath), newpath)
}
