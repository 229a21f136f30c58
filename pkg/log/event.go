package log

import "time"

// Event is one trace record of a generator run.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the generator run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Stage of the run that produced the event.
	Stage Stage `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Fetch      *FetchEvent      `cbor:"10,keyasint,omitempty"`
	Record     *RecordEvent     `cbor:"11,keyasint,omitempty"`
	Diagnostic *DiagnosticEvent `cbor:"12,keyasint,omitempty"`
	Artifact   *ArtifactEvent   `cbor:"13,keyasint,omitempty"`
	Summary    *SummaryEvent    `cbor:"14,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"15,keyasint,omitempty"`
}

// Stage identifies a step of the generator pipeline.
type Stage uint8

const (
	// StageFetch downloads the export.
	StageFetch Stage = 0
	// StageParse turns export lines into entries.
	StageParse Stage = 1
	// StageRender produces artifact contents.
	StageRender Stage = 2
	// StageWrite persists artifacts.
	StageWrite Stage = 3
	// StageStore records the run in the history database.
	StageStore Stage = 4
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageFetch:
		return "FETCH"
	case StageParse:
		return "PARSE"
	case StageRender:
		return "RENDER"
	case StageWrite:
		return "WRITE"
	case StageStore:
		return "STORE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryInfo marks normal progress.
	CategoryInfo Category = 0
	// CategoryDiagnostic marks a recoverable problem in the input.
	CategoryDiagnostic Category = 1
	// CategoryError marks a failure that ended the run.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "INFO"
	case CategoryDiagnostic:
		return "DIAGNOSTIC"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FetchEvent describes how the export was obtained.
type FetchEvent struct {
	URL         string        `cbor:"1,keyasint"`
	CachePath   string        `cbor:"2,keyasint"`
	ContentType string        `cbor:"3,keyasint,omitempty"`
	Size        int64         `cbor:"4,keyasint"`
	Fingerprint string        `cbor:"5,keyasint,omitempty"`
	Offline     bool          `cbor:"6,keyasint,omitempty"`
	Duration    time.Duration `cbor:"7,keyasint,omitempty"`
}

// RecordEvent is emitted for every completed entry.
type RecordEvent struct {
	DDI  uint16 `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint"`
	Line int    `cbor:"3,keyasint"`
}

// DiagnosticEvent mirrors a parser diagnostic.
type DiagnosticEvent struct {
	Line    int     `cbor:"1,keyasint"`
	Kind    string  `cbor:"2,keyasint"`
	DDI     *uint16 `cbor:"3,keyasint,omitempty"`
	Message string  `cbor:"4,keyasint"`
}

// ArtifactEvent describes a rendered or written output file.
type ArtifactEvent struct {
	Path    string `cbor:"1,keyasint"`
	Kind    string `cbor:"2,keyasint"`
	Size    int    `cbor:"3,keyasint"`
	Entries int    `cbor:"4,keyasint"`
}

// SummaryEvent closes a successful parse stage.
type SummaryEvent struct {
	Entries      int           `cbor:"1,keyasint"`
	RecordStarts int           `cbor:"2,keyasint"`
	Diagnostics  int           `cbor:"3,keyasint"`
	Lines        int           `cbor:"4,keyasint"`
	Duration     time.Duration `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures the error that ended a run.
type ErrorEventData struct {
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
