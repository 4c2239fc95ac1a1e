package planner

import (
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/naming"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Build computes the rename plan for files, which must already be in
// listing order. Any naming error blocks the whole plan.
func Build(dir string, files []types.FileEntry, cfg types.NamingConfig) (*types.Plan, error) {
	logger := logging.GetLogger(logging.ComponentPlanner)

	gen, err := naming.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	plan := &types.Plan{
		Directory: dir,
		Naming:    gen.Config(),
		Entries:   make([]types.PlanEntry, 0, len(files)),
	}

	for i, file := range files {
		target, err := gen.Name(i+1, file.Ext)
		if err != nil {
			logger.Debug().Err(err).Str("source", file.Name).Int("index", i+1).Msg("Cannot name file")
			return nil, err
		}
		plan.Entries = append(plan.Entries, types.PlanEntry{Source: file, TargetName: target})
	}

	logger.Debug().
		Str("dir", dir).
		Str("mode", cfg.Mode.String()).
		Int("entries", plan.Len()).
		Int("changed", plan.ChangedCount()).
		Msg("Built plan")
	return plan, nil
}
