package store

import (
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run is one ddi-gen invocation.
type Run struct {
	ID              string     `json:"id"`
	SourceURL       string     `json:"source_url"`
	Fingerprint     string     `json:"fingerprint,omitempty"`
	ToolVersion     string     `json:"tool_version"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	EntryCount      int        `json:"entry_count"`
	DiagnosticCount int        `json:"diagnostic_count"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	Duration        string     `json:"duration,omitempty"`
}

// Change is an identifier present in both runs with different contents.
type Change struct {
	DDI    uint16    `json:"ddi"`
	Old    ddi.Entry `json:"old"`
	New    ddi.Entry `json:"new"`
	Fields []string  `json:"fields"`
}

// Diff compares the entries of two runs. Each list is ordered by
// identifier.
type Diff struct {
	OldRunID string      `json:"old_run_id"`
	NewRunID string      `json:"new_run_id"`
	Added    []ddi.Entry `json:"added,omitempty"`
	Removed  []ddi.Entry `json:"removed,omitempty"`
	Changed  []Change    `json:"changed,omitempty"`
}

// Empty reports whether the runs produced identical tables.
func (d *Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}
