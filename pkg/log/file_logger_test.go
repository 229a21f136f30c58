package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("trace file was not created")
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	id := uint16(229)
	logger.Log(Event{
		Timestamp: time.Now(),
		RunID:     "run-1",
		Stage:     StageParse,
		Category:  CategoryDiagnostic,
		Diagnostic: &DiagnosticEvent{
			Line:    12,
			Kind:    "duplicate-ddi",
			DDI:     &id,
			Message: "DDI 229 already emitted",
		},
	})
	if logger.Written() != 1 {
		t.Errorf("Written = %d, want 1", logger.Written())
	}
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if got.RunID != "run-1" || got.Stage != StageParse {
		t.Errorf("header = %q/%v", got.RunID, got.Stage)
	}
	if got.Diagnostic == nil || got.Diagnostic.DDI == nil || *got.Diagnostic.DDI != 229 {
		t.Fatalf("diagnostic payload lost: %+v", got.Diagnostic)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dlog")

	for i := range 2 {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		logger.Log(Event{Timestamp: time.Now(), RunID: "r"})
		logger.Close()
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	if n := countEvents(t, r); n != 2 {
		t.Errorf("events = %d, want 2", n)
	}
}

func TestFileLoggerIgnoresAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	logger.Log(Event{RunID: "late"})
	if logger.Written() != 0 {
		t.Error("event written after Close")
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.dlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 25 {
				logger.Log(Event{Timestamp: time.Now(), RunID: "c", Record: &RecordEvent{DDI: uint16(g*100 + i)}})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if n := countEvents(t, r); n != 200 {
		t.Errorf("events = %d, want 200", n)
	}
}
