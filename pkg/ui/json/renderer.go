// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/renumber/pkg/errors"
	"github.com/arthur-debert/renumber/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

type entryDoc struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Changed bool   `json:"changed"`
}

type planDoc struct {
	Directory string             `json:"directory"`
	Naming    types.NamingConfig `json:"naming"`
	Entries   []entryDoc         `json:"entries"`
	Changed   int                `json:"changed"`
}

type executionDoc struct {
	Directory  string     `json:"directory"`
	Completed  bool       `json:"completed"`
	Applied    []entryDoc `json:"applied"`
	Unchanged  int        `json:"unchanged"`
	Failed     *entryDoc  `json:"failed,omitempty"`
	DurationMS int64      `json:"durationMs"`
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func toEntryDoc(e types.PlanEntry) entryDoc {
	return entryDoc{Source: e.Source.Name, Target: e.TargetName, Changed: e.Changed()}
}

// RenderPlan renders a plan as a single JSON document
func (r *Renderer) RenderPlan(plan *types.Plan) error {
	doc := planDoc{
		Directory: plan.Directory,
		Naming:    plan.Naming,
		Entries:   make([]entryDoc, 0, plan.Len()),
		Changed:   plan.ChangedCount(),
	}
	for _, e := range plan.Entries {
		doc.Entries = append(doc.Entries, toEntryDoc(e))
	}
	return r.encoder.Encode(doc)
}

// RenderExecution renders an execution result as a single JSON document
func (r *Renderer) RenderExecution(result *types.ExecutionResult) error {
	doc := executionDoc{
		Directory:  result.Directory,
		Completed:  result.Completed(),
		Applied:    make([]entryDoc, 0, result.AppliedCount()),
		Unchanged:  result.Unchanged,
		DurationMS: result.Duration.Milliseconds(),
	}
	for _, e := range result.Applied {
		doc.Applied = append(doc.Applied, toEntryDoc(e))
	}
	if result.Failed != nil {
		failed := toEntryDoc(*result.Failed)
		doc.Failed = &failed
	}
	return r.encoder.Encode(doc)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorDoc{
		Error:   errors.UserMessage(err),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
