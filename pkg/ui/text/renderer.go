// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderPlan prints one line per plan entry
func (r *Renderer) RenderPlan(plan *types.Plan) error {
	if plan.Len() == 0 {
		return r.printf("No files to rename in '%s'\n", plan.Directory)
	}
	for _, e := range plan.Entries {
		if err := r.printf("Preview: '%s' -> '%s'\n", e.Source.Name, e.TargetName); err != nil {
			return err
		}
	}
	return nil
}

// RenderExecution prints the applied renames followed by a summary
func (r *Renderer) RenderExecution(result *types.ExecutionResult) error {
	for _, e := range result.Applied {
		if err := r.printf("Renamed: '%s' -> '%s'\n", e.Source.Name, e.TargetName); err != nil {
			return err
		}
	}
	if result.Failed != nil {
		return r.printf("Stopped at '%s' -> '%s' after %d rename(s); earlier renames were kept\n",
			result.Failed.Source.Name, result.Failed.TargetName, result.AppliedCount())
	}
	return r.printf("Done: %d renamed, %d already named\n", result.AppliedCount(), result.Unchanged)
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.printf("Error: %s\n", errors.UserMessage(err))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}
