package planner

import (
	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/logging"
	"github.com/arthur-debert/renumber/pkg/naming"
	"github.com/arthur-debert/renumber/pkg/types"
	"golang.org/x/text/cases"
)

// ValidateOptions controls how targets are compared
type ValidateOptions struct {
	// CaseInsensitive compares targets after Unicode case folding, for
	// directories on case-insensitive filesystems
	CaseInsensitive bool
}

// Validate checks plan for illegal characters, then for duplicate targets.
// It returns the first problem found as an ErrIllegalChar or ErrCollision.
func Validate(plan *types.Plan, opts ValidateOptions) error {
	if plan == nil {
		return errors.New(errors.ErrInternal, "cannot validate a nil plan")
	}
	logger := logging.GetLogger(logging.ComponentValidate)

	for _, entry := range plan.Entries {
		if err := naming.CheckName(entry.TargetName); err != nil {
			if re, ok := err.(*errors.RenumberError); ok {
				re.WithDetail(errors.DetailSource, entry.Source.Name)
			}
			return err
		}
	}

	fold := cases.Fold()
	seen := make(map[string]string, len(plan.Entries))
	for _, entry := range plan.Entries {
		key := entry.TargetName
		if opts.CaseInsensitive {
			key = fold.String(key)
		}
		if first, dup := seen[key]; dup {
			logger.Debug().
				Str("target", entry.TargetName).
				Str("source", entry.Source.Name).
				Str("first_source", first).
				Msg("Collision in plan")
			return errors.Newf(errors.ErrCollision, "'%s' and '%s' would both be renamed to '%s'",
				first, entry.Source.Name, entry.TargetName).
				WithDetail(errors.DetailName, entry.TargetName).
				WithDetail(errors.DetailSource, entry.Source.Name)
		}
		seen[key] = entry.Source.Name
	}

	logger.Debug().
		Int("entries", plan.Len()).
		Bool("case_insensitive", opts.CaseInsensitive).
		Msg("Plan is valid")
	return nil
}
