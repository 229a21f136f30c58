package exportparse

import "fmt"

// DiagnosticKind classifies a recoverable parse problem.
type DiagnosticKind string

const (
	// KindUnparseableEntity marks a record start line without a numeric identifier.
	KindUnparseableEntity DiagnosticKind = "unparseable-entity"
	// KindUnparseableUnit marks a unit line without the " - " separator.
	KindUnparseableUnit DiagnosticKind = "unparseable-unit"
	// KindUnparseableResolution marks a resolution that is not a number.
	KindUnparseableResolution DiagnosticKind = "unparseable-resolution"
	// KindUnparseableRange marks a display range without two bounds.
	KindUnparseableRange DiagnosticKind = "unparseable-range"
	// KindIncompleteRecord marks a record that was dropped because a field was missing.
	KindIncompleteRecord DiagnosticKind = "incomplete-record"
	// KindDuplicateDDI marks an identifier that was already emitted.
	KindDuplicateDDI DiagnosticKind = "duplicate-ddi"
	// KindDuplicateField marks a repeated field line within one record.
	KindDuplicateField DiagnosticKind = "duplicate-field"
	// KindOrphanField marks a field line outside of any record.
	KindOrphanField DiagnosticKind = "orphan-field"
)

// Diagnostic describes a line that could not be used as-is.
type Diagnostic struct {
	// Line is the 1-based line number in the export.
	Line int

	// Kind classifies the problem.
	Kind DiagnosticKind

	// DDI is the identifier of the record in progress, if any.
	DDI *uint16

	// Message is a human-readable description.
	Message string
}

// String formats the diagnostic as "line N: kind: message".
func (d Diagnostic) String() string {
	if d.DDI != nil {
		return fmt.Sprintf("line %d: %s (DDI %d): %s", d.Line, d.Kind, *d.DDI, d.Message)
	}
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Message)
}
