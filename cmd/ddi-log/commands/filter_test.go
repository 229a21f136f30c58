package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

func TestRunFilterWritesMatchingEvents(t *testing.T) {
	path := createTestLogFile(t, exportEvents())
	out := filepath.Join(t.TempDir(), "filtered.dlog")

	cat := log.CategoryDiagnostic
	n, err := RunFilter(path, out, log.Filter{Category: &cat})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d events, want 1", n)
	}

	reader, err := log.NewReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.Diagnostic == nil || event.Diagnostic.Kind != "incomplete" {
		t.Errorf("unexpected event %+v", event)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}
