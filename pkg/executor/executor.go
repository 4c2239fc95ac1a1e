package executor

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/filesystem"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Logger defaults to the "executor" component logger when nil
	Logger *zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
	// CaseInsensitive allows a target that differs from its source only
	// by case, since on such a filesystem both names are the same entry
	CaseInsensitive bool
}

// Executor renames the files of a plan one at a time
type Executor struct {
	logger          zerolog.Logger
	fs              types.FS
	caseInsensitive bool
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger(logging.ComponentExecutor)
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		logger:          logger,
		fs:              fs,
		caseInsensitive: opts.CaseInsensitive,
	}
}

// Execute applies plan. The result is never nil: on error it holds the
// renames applied before the failing entry.
func (e *Executor) Execute(plan *types.Plan) (*types.ExecutionResult, error) {
	start := time.Now()
	result := &types.ExecutionResult{}
	if plan == nil {
		return result, errors.New(errors.ErrInternal, "cannot execute a nil plan")
	}
	result.Directory = plan.Directory
	result.Applied = make([]types.PlanEntry, 0, plan.ChangedCount())

	logger := logging.WithPlan(e.logger, plan)
	logger.Info().Bool("caseInsensitive", e.caseInsensitive).Msg("Executing plan")

	for i := range plan.Entries {
		entry := plan.Entries[i]
		if !entry.Changed() {
			result.Unchanged++
			e.logger.Trace().Str("source", entry.Source.Name).Msg("Already named, skipping")
			continue
		}

		if err := e.executeEntry(plan.Directory, entry); err != nil {
			result.Failed = &entry
			result.Duration = time.Since(start)
			logger.Info().
				Err(err).
				Int("applied", result.AppliedCount()).
				Int("remaining", plan.Len()-i).
				Msg("Execution aborted")
			return result, err
		}
		result.Applied = append(result.Applied, entry)
	}

	result.Duration = time.Since(start)
	logger.Info().
		Int("applied", result.AppliedCount()).
		Int("unchanged", result.Unchanged).
		Dur("duration", result.Duration).
		Msg("Plan executed successfully")
	return result, nil
}

// executeEntry performs a single rename
func (e *Executor) executeEntry(dir string, entry types.PlanEntry) error {
	src := entry.SourcePath(dir)
	dst := entry.TargetPath(dir)

	if _, err := e.fs.Lstat(dst); err == nil && !e.sameEntry(src, dst) {
		return errors.Newf(errors.ErrTargetExists, "target '%s' already exists", dst).
			WithDetail(errors.DetailSource, src).
			WithDetail(errors.DetailDestination, dst)
	}

	if err := e.fs.Rename(src, dst); err != nil {
		return errors.Wrapf(err, errors.ErrRenameFailed, "failed to rename '%s' to '%s'", src, dst).
			WithDetail(errors.DetailSource, src).
			WithDetail(errors.DetailDestination, dst)
	}

	e.logger.Debug().
		Str("source", entry.Source.Name).
		Str("target", entry.TargetName).
		Msg("Renamed")
	return nil
}

// sameEntry reports whether dst names the source file itself, which only
// happens for a case-only rename on a case-insensitive filesystem.
func (e *Executor) sameEntry(src, dst string) bool {
	if src == dst {
		return true
	}
	if !strings.EqualFold(src, dst) {
		return false
	}
	if e.caseInsensitive {
		return true
	}
	srcInfo, err := e.fs.Lstat(src)
	if err != nil {
		return false
	}
	dstInfo, err := e.fs.Lstat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}
