package core

import (
	"github.com/arthur-debert/renumber/pkg/filesystem"
	"github.com/arthur-debert/renumber/pkg/listing"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/planner"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Preview lists the directory and returns the validated rename plan.
// Nothing on disk is modified.
func Preview(opts PreviewOptions) (*types.Plan, error) {
	plan, _, err := preview(opts)
	return plan, err
}

// preview also reports the case sensitivity the plan was validated under,
// which Apply hands on to the executor.
func preview(opts PreviewOptions) (*types.Plan, bool, error) {
	logger := logging.GetLogger(logging.ComponentPreview)
	defer logging.LogOperationStart(logger, "preview")()
	fs := opts.fs()

	logger.Info().
		Str("dir", opts.Directory).
		Str("mode", opts.Naming.Mode.String()).
		Str("pattern", opts.Naming.Pattern).
		Int("start", opts.Naming.StartNumber).
		Msg("Computing plan")

	// Step 1: list files
	files, err := listing.ListFiles(fs, opts.Directory)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to list directory")
		return nil, false, err
	}

	// Step 2: name them
	plan, err := planner.Build(opts.Directory, files, opts.Naming)
	if err != nil {
		return nil, false, err
	}

	// Step 3: validate
	insensitive := resolveCaseInsensitive(fs, opts.Directory, opts.CaseMode)
	if err := planner.Validate(plan, planner.ValidateOptions{CaseInsensitive: insensitive}); err != nil {
		return nil, false, err
	}

	logger = logging.WithPlan(logger, plan)
	logger.Debug().Bool("caseInsensitive", insensitive).Msg("Plan ready")
	return plan, insensitive, nil
}

func resolveCaseInsensitive(fs types.FS, dir string, mode CaseMode) bool {
	switch mode {
	case CaseSensitive:
		return false
	case CaseInsensitive:
		return true
	}

	if insensitive, ok := filesystem.ProbeCaseInsensitive(fs, dir); ok {
		return insensitive
	}
	return filesystem.PlatformCaseInsensitive()
}
