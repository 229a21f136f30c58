package commands

import (
	"path/filepath"
	"testing"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

// createTestLogFile writes events to a temporary trace file.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.dlog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }
