package filesystem

import (
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/types"
)

// ProbeCaseInsensitive reports whether dir lives on a case-insensitive
// filesystem. It looks for an entry whose case-swapped name is not itself
// listed and checks whether that swapped name resolves. ok is false when no
// entry could be used for the probe (empty directory, names without
// letters).
func ProbeCaseInsensitive(fsys types.FS, dir string) (insensitive bool, ok bool) {
	logger := logging.GetLogger(logging.ComponentCasefold)

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("Cannot list directory for case probe")
		return false, false
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, e := range entries {
		swapped := swapCase(e.Name())
		if swapped == e.Name() || names[swapped] {
			continue
		}
		_, err := fsys.Lstat(filepath.Join(dir, swapped))
		insensitive = err == nil
		logger.Debug().
			Str("dir", dir).
			Str("probe", e.Name()).
			Bool("insensitive", insensitive).
			Msg("Probed filesystem case sensitivity")
		return insensitive, true
	}

	return false, false
}

// PlatformCaseInsensitive returns the usual default for the running OS
func PlatformCaseInsensitive() bool {
	switch runtime.GOOS {
	case "darwin", "windows", "ios":
		return true
	default:
		return false
	}
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
