package interactive

import (
	"strings"

	"github.com/arthur-debert/renumber/pkg/core"
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/naming"
	"github.com/arthur-debert/renumber/pkg/paths"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds the initial field values of a session
type Options struct {
	Directory   string
	Pattern     string
	StartNumber int
	CaseMode    core.CaseMode
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// ConfirmFunc is asked before renames are applied. Returning false
// cancels the execution.
type ConfirmFunc func(plan *types.Plan) (bool, error)

// Session is the state of one interactive renaming session
type Session struct {
	directory string
	pattern   string
	startText string
	caseMode  core.CaseMode
	fs        types.FS
	preview   *types.Plan
	logger    zerolog.Logger
}

// NewSession creates a session with the given initial values
func NewSession(opts Options) *Session {
	return &Session{
		directory: opts.Directory,
		pattern:   opts.Pattern,
		startText: formatInt(opts.StartNumber),
		caseMode:  opts.CaseMode,
		fs:        opts.FileSystem,
		logger:    logging.GetLogger(logging.ComponentInteractive),
	}
}

// Directory returns the directory field
func (s *Session) Directory() string { return s.directory }

// Pattern returns the pattern field
func (s *Session) Pattern() string { return s.pattern }

// StartText returns the start number field as typed
func (s *Session) StartText() string { return s.startText }

// LastPreview returns the current preview, or nil when there is none
func (s *Session) LastPreview() *types.Plan { return s.preview }

// SetDirectory changes the directory and discards the preview. A leading
// ~ is expanded when the preview is computed.
func (s *Session) SetDirectory(dir string) {
	s.directory = strings.TrimSpace(dir)
	s.invalidate("directory")
}

// SetPattern changes the pattern and discards the preview
func (s *Session) SetPattern(pattern string) {
	s.pattern = pattern
	s.invalidate("pattern")
}

// SetStartNumber changes the start number text and discards the preview.
// The text is only parsed when a preview is requested.
func (s *Session) SetStartNumber(text string) {
	s.startText = text
	s.invalidate("start")
}

// Naming returns the naming configuration described by the fields
func (s *Session) Naming() (types.NamingConfig, error) {
	start, err := naming.ParseStartNumber(s.startText)
	if err != nil {
		return types.NamingConfig{}, err
	}
	return types.PatternNaming(s.pattern, start), nil
}

// Preview computes and keeps a plan for the current fields. On failure
// the previous preview is discarded as well.
func (s *Session) Preview() (*types.Plan, error) {
	s.preview = nil

	if s.directory == "" {
		return nil, errors.New(errors.ErrInvalidInput, "choose a directory first")
	}
	dir, err := paths.Normalize(s.directory)
	if err != nil {
		return nil, err
	}
	cfg, err := s.Naming()
	if err != nil {
		return nil, err
	}

	plan, err := core.Preview(core.PreviewOptions{
		Directory:  dir,
		Naming:     cfg,
		CaseMode:   s.caseMode,
		FileSystem: s.fs,
	})
	if err != nil {
		return nil, err
	}

	s.preview = plan
	return plan, nil
}

// Execute applies the renames after confirm approves the current preview.
// It fails with ErrPreviewRequired when no preview is current. A nil
// result with a nil error means confirm declined. After a complete run
// the preview is refreshed against the renamed directory.
func (s *Session) Execute(confirm ConfirmFunc) (*types.ExecutionResult, error) {
	if s.preview == nil {
		return nil, errors.New(errors.ErrPreviewRequired, "preview the changes first")
	}

	ok, err := confirm(s.preview)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info().Msg("Execution declined")
		return nil, nil
	}

	cfg, err := s.Naming()
	if err != nil {
		return nil, err
	}

	result, err := core.Apply(core.ApplyOptions{
		Directory:  s.preview.Directory,
		Naming:     cfg,
		CaseMode:   s.caseMode,
		FileSystem: s.fs,
	})
	s.preview = nil
	if err != nil {
		return result, err
	}

	if _, perr := s.Preview(); perr != nil {
		s.logger.Warn().Err(perr).Msg("Cannot refresh preview after execution")
	}
	return result, nil
}

func (s *Session) invalidate(field string) {
	if s.preview != nil {
		s.logger.Debug().Str("field", field).Msg("Preview discarded")
	}
	s.preview = nil
}
