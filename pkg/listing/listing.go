package listing

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/types"
)

// ListFiles returns the regular files of dir sorted by name in byte order.
// Subdirectories are skipped; symlinks are listed when they point to a
// regular file.
func ListFiles(fsys types.FS, dir string) ([]types.FileEntry, error) {
	logger := logging.GetLogger(logging.ComponentListing).With().Str("dir", dir).Logger()

	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() {
		e := errors.Newf(errors.ErrNotADirectory, "'%s' is not a valid directory", dir).
			WithDetail(errors.DetailPath, dir)
		if err != nil {
			e.Wrapped = err
		}
		return nil, e
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list '%s'", dir).
			WithDetail(errors.DetailPath, dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isRegularFile(fsys, dir, entry) {
			names = append(names, entry.Name())
			continue
		}
		logger.Trace().Str("entry", entry.Name()).Msg("Skipping non-regular entry")
	}
	sort.Strings(names)

	files := make([]types.FileEntry, len(names))
	for i, name := range names {
		files[i] = NewFileEntry(name)
	}

	logger.Debug().Int("files", len(files)).Int("entries", len(entries)).Msg("Listed directory")
	return files, nil
}

// NewFileEntry builds a FileEntry from a bare file name
func NewFileEntry(name string) types.FileEntry {
	stem, ext := SplitExt(name)
	return types.FileEntry{Name: name, Stem: stem, Ext: ext}
}

func isRegularFile(fsys types.FS, dir string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
