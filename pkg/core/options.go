package core

import (
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/filesystem"
	"github.com/arthur-debert/renumber/pkg/types"
)

// CaseMode selects how target names are compared for collisions
type CaseMode string

const (
	// CaseAuto detects the behaviour of the directory's filesystem
	CaseAuto CaseMode = "auto"
	// CaseSensitive treats names differing in case as distinct
	CaseSensitive CaseMode = "sensitive"
	// CaseInsensitive folds case before comparing names
	CaseInsensitive CaseMode = "insensitive"
)

// ParseCaseMode parses a case mode name; the empty string means CaseAuto
func ParseCaseMode(s string) (CaseMode, error) {
	switch m := CaseMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return CaseAuto, nil
	case CaseAuto, CaseSensitive, CaseInsensitive:
		return m, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "invalid case mode %q (want auto, sensitive or insensitive)", s)
	}
}

// PreviewOptions contains options for computing a plan
type PreviewOptions struct {
	Directory string
	Naming    types.NamingConfig
	CaseMode  CaseMode
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// ApplyOptions contains options for computing and executing a plan
type ApplyOptions struct {
	Directory  string
	Naming     types.NamingConfig
	CaseMode   CaseMode
	FileSystem types.FS
}

func (o PreviewOptions) fs() types.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

func (o ApplyOptions) preview() PreviewOptions {
	return PreviewOptions{
		Directory:  o.Directory,
		Naming:     o.Naming,
		CaseMode:   o.CaseMode,
		FileSystem: o.FileSystem,
	}
}
