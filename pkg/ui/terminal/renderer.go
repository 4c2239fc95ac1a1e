// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/arthur-debert/renumber/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

const arrow = "→"

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderPlan renders a plan as an aligned two column listing
func (r *Renderer) RenderPlan(plan *types.Plan) error {
	var b strings.Builder
	b.WriteString(styles.GetStyle("Header").Render(
		fmt.Sprintf("Preview of %s", styles.GetStyle("Directory").Render(plan.Directory))))
	b.WriteString("\n")

	if plan.Len() == 0 {
		b.WriteString(styles.GetStyle("Muted").Render("No files to rename"))
		b.WriteString("\n")
		return r.write(b.String())
	}

	width := sourceWidth(plan.Entries)
	for _, e := range plan.Entries {
		b.WriteString(r.entryLine(e, width, ""))
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d of %d files will be renamed", plan.ChangedCount(), plan.Len())
	b.WriteString(styles.MergeStyles("Summary", "Info").Render(summary))
	b.WriteString("\n")
	return r.write(b.String())
}

// RenderExecution renders the applied renames and the outcome
func (r *Renderer) RenderExecution(result *types.ExecutionResult) error {
	var b strings.Builder
	width := sourceWidth(result.Applied)
	for _, e := range result.Applied {
		b.WriteString(r.entryLine(e, width, styles.GetStyle("Success").Render("✓")+" "))
		b.WriteString("\n")
	}

	var summary string
	if result.Failed != nil {
		summary = styles.GetStyle("Error").Render("✗ ") + fmt.Sprintf(
			"Stopped at %s %s %s after %d rename(s); earlier renames were kept",
			styles.GetStyle("Source").Render(result.Failed.Source.Name),
			arrow,
			styles.GetStyle("Target").Render(result.Failed.TargetName),
			result.AppliedCount())
	} else {
		summary = styles.GetStyle("Success").Render(
			fmt.Sprintf("Renamed %d file(s)", result.AppliedCount()))
		if result.Unchanged > 0 {
			summary += styles.GetStyle("Muted").Render(
				fmt.Sprintf(", %d already named", result.Unchanged))
		}
	}
	b.WriteString(styles.GetStyle("Summary").Render(summary))
	b.WriteString("\n")
	return r.write(b.String())
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	line := styles.GetStyle("Error").Render("Error:") + " " + errors.UserMessage(err)
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += " " + styles.GetStyle("Muted").Render("("+string(code)+")")
	}
	return r.write(line + "\n")
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.GetStyle("Info").Render(msg) + "\n")
}

func (r *Renderer) entryLine(e types.PlanEntry, width int, prefix string) string {
	source := lipgloss.NewStyle().Width(width).Render(styles.GetStyle("Source").Render(e.Source.Name))
	if !e.Changed() {
		return "  " + prefix + source + styles.GetStyle("Unchanged").Render("  (unchanged)")
	}
	return "  " + prefix + source +
		styles.GetStyle("Arrow").Render(arrow) +
		styles.GetStyle("Target").Render(e.TargetName)
}

func sourceWidth(entries []types.PlanEntry) int {
	width := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Source.Name); w > width {
			width = w
		}
	}
	return width
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}
