package core

import (
	"github.com/arthur-debert/renumber/pkg/executor"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Apply computes a fresh plan for the directory and executes it. When
// planning fails nothing is renamed and the result is nil. When execution
// fails the result holds the renames applied before the failing entry.
func Apply(opts ApplyOptions) (*types.ExecutionResult, error) {
	logger := logging.GetLogger(logging.ComponentApply)
	defer logging.LogOperationStart(logger, "apply")()
	previewOpts := opts.preview()
	previewOpts.FileSystem = previewOpts.fs()

	plan, insensitive, err := preview(previewOpts)
	if err != nil {
		return nil, err
	}

	// The executor must accept a case-only target exactly when validation did.
	exec := executor.New(executor.Options{
		Logger:          &logger,
		FS:              previewOpts.FileSystem,
		CaseInsensitive: insensitive,
	})
	return exec.Execute(plan)
}
