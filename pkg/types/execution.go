package types

import "time"

// ExecutionResult records what an execution did. It is populated even when
// execution aborts part way; renames already applied are not undone.
type ExecutionResult struct {
	Directory string      `json:"directory"`
	Applied   []PlanEntry `json:"applied"`
	Unchanged int         `json:"unchanged"`
	// Failed is the entry execution stopped at, nil on success
	Failed   *PlanEntry    `json:"failed,omitempty"`
	Duration time.Duration `json:"duration"`
}

// AppliedCount returns the number of files renamed
func (r *ExecutionResult) AppliedCount() int {
	if r == nil {
		return 0
	}
	return len(r.Applied)
}

// Completed reports whether every entry was processed
func (r *ExecutionResult) Completed() bool {
	return r != nil && r.Failed == nil
}
