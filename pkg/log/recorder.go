package log

import (
	"time"

	"github.com/google/uuid"
)

// Recorder stamps events with a run ID and timestamp before handing them to
// a Logger. A nil *Recorder discards everything.
type Recorder struct {
	logger Logger
	runID  string
	now    func() time.Time
}

// NewRecorder creates a Recorder for one run. An empty runID gets a fresh
// UUID.
func NewRecorder(logger Logger, runID string) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Recorder{logger: logger, runID: runID, now: time.Now}
}

// RunID returns the identifier attached to every event.
func (r *Recorder) RunID() string {
	if r == nil {
		return ""
	}
	return r.runID
}

func (r *Recorder) emit(stage Stage, cat Category, fill func(*Event)) {
	if r == nil {
		return
	}
	ev := Event{
		Timestamp: r.now(),
		RunID:     r.runID,
		Stage:     stage,
		Category:  cat,
	}
	fill(&ev)
	r.logger.Log(ev)
}

// Fetch records where the export came from.
func (r *Recorder) Fetch(f FetchEvent) {
	r.emit(StageFetch, CategoryInfo, func(e *Event) { e.Fetch = &f })
}

// Record records one completed entry.
func (r *Recorder) Record(ddi uint16, name string, line int) {
	r.emit(StageParse, CategoryInfo, func(e *Event) {
		e.Record = &RecordEvent{DDI: ddi, Name: name, Line: line}
	})
}

// Diagnostic records a recoverable parse problem.
func (r *Recorder) Diagnostic(d DiagnosticEvent) {
	r.emit(StageParse, CategoryDiagnostic, func(e *Event) { e.Diagnostic = &d })
}

// Summary closes the parse stage.
func (r *Recorder) Summary(s SummaryEvent) {
	r.emit(StageParse, CategoryInfo, func(e *Event) { e.Summary = &s })
}

// Artifact records a produced file.
func (r *Recorder) Artifact(stage Stage, a ArtifactEvent) {
	r.emit(stage, CategoryInfo, func(e *Event) { e.Artifact = &a })
}

// Error records the failure that ended the run.
func (r *Recorder) Error(stage Stage, err error, context string) {
	if err == nil {
		return
	}
	r.emit(stage, CategoryError, func(e *Event) {
		e.Error = &ErrorEventData{Message: err.Error(), Context: context}
	})
}
