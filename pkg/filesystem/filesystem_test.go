package filesystem_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/renumber/pkg/filesystem"
	"github.com/arthur-debert/renumber/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := filesystem.NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("hello world"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.True(t, info.Mode().IsRegular())

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub", entries[0].Name())
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "test.txt", entries[1].Name())

	renamed := filepath.Join(tmpDir, "1.txt")
	require.NoError(t, fs.Rename(testFile, renamed))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
	_, err = fs.Lstat(renamed)
	assert.NoError(t, err)
}

func TestNewOS_LstatDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	fs := filesystem.NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	link := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, os.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestAferoFS(t *testing.T) {
	fs, mem := testutil.NewDirWithFiles(t, "/photos", "b.png", "a.txt")

	entries, err := fs.ReadDir("/photos")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name())

	require.NoError(t, fs.Rename("/photos/a.txt", "/photos/1.txt"))
	assert.Equal(t, []string{"1.txt", "b.png"}, testutil.ListNames(t, mem, "/photos"))

	_, err = fs.Lstat("/photos/a.txt")
	assert.Error(t, err)
}

func TestProbeCaseInsensitive(t *testing.T) {
	t.Run("case sensitive memory fs", func(t *testing.T) {
		fs, _ := testutil.NewDirWithFiles(t, "/d", "Photo.jpg")
		insensitive, ok := filesystem.ProbeCaseInsensitive(fs, "/d")
		assert.True(t, ok)
		assert.False(t, insensitive)
	})

	t.Run("case insensitive wrapper", func(t *testing.T) {
		inner, _ := testutil.NewDirWithFiles(t, "/d", "Photo.jpg")
		fs := testutil.NewCaseInsensitiveFS(inner)
		insensitive, ok := filesystem.ProbeCaseInsensitive(fs, "/d")
		assert.True(t, ok)
		assert.True(t, insensitive)
	})

	t.Run("no usable entry", func(t *testing.T) {
		fs, _ := testutil.NewDirWithFiles(t, "/d", "1", "2_3")
		_, ok := filesystem.ProbeCaseInsensitive(fs, "/d")
		assert.False(t, ok)
	})

	t.Run("both case variants listed", func(t *testing.T) {
		fs, _ := testutil.NewDirWithFiles(t, "/d", "a", "A")
		_, ok := filesystem.ProbeCaseInsensitive(fs, "/d")
		assert.False(t, ok)
	})

	t.Run("missing directory", func(t *testing.T) {
		fs, _ := testutil.NewTestFS()
		_, ok := filesystem.ProbeCaseInsensitive(fs, "/missing")
		assert.False(t, ok)
	})
}

func TestPlatformCaseInsensitive(t *testing.T) {
	want := runtime.GOOS == "darwin" || runtime.GOOS == "windows" || runtime.GOOS == "ios"
	assert.Equal(t, want, filesystem.PlatformCaseInsensitive())
}
