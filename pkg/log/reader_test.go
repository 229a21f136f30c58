package log

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestTrace(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func countEvents(t *testing.T, r *Reader) int {
	t.Helper()
	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			return n
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		n++
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC)
	id := uint16(141)
	events := []Event{
		{Timestamp: base, RunID: "a", Stage: StageFetch, Fetch: &FetchEvent{URL: "u"}},
		{Timestamp: base.Add(time.Second), RunID: "a", Stage: StageParse, Record: &RecordEvent{DDI: 141}},
		{Timestamp: base.Add(2 * time.Second), RunID: "a", Stage: StageParse, Category: CategoryDiagnostic,
			Diagnostic: &DiagnosticEvent{Kind: "duplicate-ddi", DDI: &id}},
		{Timestamp: base.Add(3 * time.Second), RunID: "b", Stage: StageParse, Record: &RecordEvent{DDI: 1}},
		{Timestamp: base.Add(4 * time.Second), RunID: "b", Stage: StageWrite, Category: CategoryError,
			Error: &ErrorEventData{Message: "disk full"}},
	}
	path := createTestTrace(t, events)

	parse := StageParse
	diag := CategoryDiagnostic
	start := base.Add(time.Second)
	end := base.Add(4 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 5},
		{"run", Filter{RunID: "b"}, 2},
		{"stage", Filter{Stage: &parse}, 3},
		{"category", Filter{Category: &diag}, 1},
		{"ddi", Filter{DDI: &id}, 2},
		{"window", Filter{TimeStart: &start, TimeEnd: &end}, 3},
		{"combined", Filter{RunID: "a", Stage: &parse, DDI: &id}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader: %v", err)
			}
			defer r.Close()
			if got := countEvents(t, r); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.dlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStreamReaderTruncated(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(Event{RunID: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(Event{RunID: "y", Summary: &SummaryEvent{Entries: 3}}); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()[:buf.Len()-2]

	r := NewStreamReader(bytes.NewReader(data), Filter{})
	defer r.Close()
	if n := countEvents(t, r); n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}
