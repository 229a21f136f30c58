package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func TestRecorderStampsEvents(t *testing.T) {
	c := &captureLogger{}
	rec := NewRecorder(c, "run-42")
	fixed := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	rec.Fetch(FetchEvent{URL: "https://example.test/export", Size: 10})
	rec.Record(229, "Actual Work State", 7)
	rec.Diagnostic(DiagnosticEvent{Line: 9, Kind: "orphan-field"})
	rec.Summary(SummaryEvent{Entries: 1})
	rec.Artifact(StageWrite, ArtifactEvent{Path: "out.hpp", Kind: "header"})
	rec.Error(StageWrite, errors.New("boom"), "write header")
	rec.Error(StageWrite, nil, "ignored")

	if len(c.events) != 6 {
		t.Fatalf("events = %d, want 6", len(c.events))
	}
	for i, e := range c.events {
		if e.RunID != "run-42" || !e.Timestamp.Equal(fixed) {
			t.Errorf("event %d not stamped: %+v", i, e)
		}
	}
	if c.events[0].Stage != StageFetch || c.events[0].Fetch == nil {
		t.Error("fetch event malformed")
	}
	if c.events[2].Category != CategoryDiagnostic {
		t.Error("diagnostic category not set")
	}
	if c.events[5].Category != CategoryError || c.events[5].Error.Context != "write header" {
		t.Errorf("error event = %+v", c.events[5])
	}
}

func TestRecorderGeneratesRunID(t *testing.T) {
	a := NewRecorder(nil, "")
	b := NewRecorder(nil, "")
	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Errorf("run IDs %q and %q", a.RunID(), b.RunID())
	}
}

func TestNilRecorder(t *testing.T) {
	var rec *Recorder
	rec.Record(1, "x", 1)
	rec.Error(StageFetch, errors.New("x"), "")
	if rec.RunID() != "" {
		t.Error("nil recorder has a run ID")
	}
}

func TestMultiLoggerAndSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	sl := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := &captureLogger{}

	m := NewMultiLogger(NewSlogAdapter(sl), nil, c)
	NewRecorder(m, "r1").Record(141, "Actual Work State", 3)

	if len(c.events) != 1 {
		t.Fatalf("capture got %d events", len(c.events))
	}
	out := buf.String()
	for _, want := range []string{"msg=trace", "run_id=r1", "stage=PARSE", "ddi=141"} {
		if !strings.Contains(out, want) {
			t.Errorf("slog output missing %q: %s", want, out)
		}
	}
}

func TestStageAndCategoryNames(t *testing.T) {
	if StageStore.String() != "STORE" || Stage(99).String() != "UNKNOWN" {
		t.Error("stage names")
	}
	if CategoryError.String() != "ERROR" || Category(9).String() != "UNKNOWN" {
		t.Error("category names")
	}
}
