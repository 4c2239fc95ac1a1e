package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renumber/pkg/filesystem"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing. The returned
// afero.Fs gives tests direct access for setup and assertions.
func NewTestFS() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// NewDirWithFiles creates an in-memory filesystem containing dir with the
// given files (content is the file name).
func NewDirWithFiles(t *testing.T, dir string, names ...string) (types.FS, afero.Fs) {
	t.Helper()
	fsys, mem := NewTestFS()
	require.NoError(t, mem.MkdirAll(dir, 0755))
	WriteFiles(t, mem, dir, names...)
	return fsys, mem
}

// WriteFiles creates each named file in dir, using the name as content so
// tests can follow a file across renames.
func WriteFiles(t *testing.T, mem afero.Fs, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, afero.WriteFile(mem, filepath.Join(dir, name), []byte(name), 0644))
	}
}

// ListNames returns the sorted names of the entries in dir
func ListNames(t *testing.T, mem afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(mem, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

// ReadContent returns the content of dir/name as a string
func ReadContent(t *testing.T, mem afero.Fs, dir, name string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}
