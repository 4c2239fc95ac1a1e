package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/renumber/pkg/errors"
)

// EnvHome is consulted when the OS cannot report the home directory
const EnvHome = "HOME"

// ExpandHome expands a leading ~ to the home directory. ~user forms and
// paths whose home cannot be determined are returned as-is.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Normalize expands home, makes path absolute and cleans it
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path of %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return filepath.Clean(abs), nil
}
