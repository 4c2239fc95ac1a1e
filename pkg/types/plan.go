package types

import "path/filepath"

// PlanEntry pairs a source file with its computed target name
type PlanEntry struct {
	Source     FileEntry `json:"source"`
	TargetName string    `json:"target"`
}

// Changed reports whether applying the entry alters the file name
func (e PlanEntry) Changed() bool {
	return e.Source.Name != e.TargetName
}

// SourcePath returns the absolute-or-relative source path inside dir
func (e PlanEntry) SourcePath(dir string) string {
	return filepath.Join(dir, e.Source.Name)
}

// TargetPath returns the destination path inside dir
func (e PlanEntry) TargetPath(dir string) string {
	return filepath.Join(dir, e.TargetName)
}

// Plan is the ordered list of renames for one directory. Entries are
// index-aligned with the sorted file listing. A plan is computed fresh
// for every preview or execute request and never cached.
type Plan struct {
	Directory string       `json:"directory"`
	Naming    NamingConfig `json:"naming"`
	Entries   []PlanEntry  `json:"entries"`
}

// Len returns the number of entries in the plan
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// ChangedCount returns how many entries actually rename a file
func (p *Plan) ChangedCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, e := range p.Entries {
		if e.Changed() {
			n++
		}
	}
	return n
}
