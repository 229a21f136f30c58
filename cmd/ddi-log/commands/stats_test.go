package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

func TestStatsCountsByStage(t *testing.T) {
	ts := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Stage: log.StageFetch},
		{Timestamp: ts, Stage: log.StageParse},
		{Timestamp: ts, Stage: log.StageParse},
		{Timestamp: ts, Stage: log.StageWrite},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"FETCH: 1", "PARSE: 2", "WRITE: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "RENDER:") {
		t.Error("stages without events should be omitted")
	}
}

func TestStatsCountsDiagnosticKinds(t *testing.T) {
	ts := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Category: log.CategoryDiagnostic, Diagnostic: &log.DiagnosticEvent{Kind: "incomplete"}},
		{Timestamp: ts, Category: log.CategoryDiagnostic, Diagnostic: &log.DiagnosticEvent{Kind: "incomplete"}},
		{Timestamp: ts, Category: log.CategoryDiagnostic, Diagnostic: &log.DiagnosticEvent{Kind: "duplicate"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"DIAGNOSTIC: 3", "incomplete: 2", "duplicate: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestStatsCountsRuns(t *testing.T) {
	ts := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, RunID: "run-aaaa-bbbb", Fetch: &log.FetchEvent{Fingerprint: "cafe"}},
		{Timestamp: ts.Add(time.Second), RunID: "run-aaaa-bbbb", Record: &log.RecordEvent{DDI: 1}},
		{Timestamp: ts.Add(2 * time.Second), RunID: "run-cccc-dddd", Category: log.CategoryError, Error: &log.ErrorEventData{Message: "boom"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Runs: 2") {
		t.Errorf("expected 2 runs in output, got:\n%s", output)
	}
	if !strings.Contains(output, "run-aaaa: ok, 2 events, 1 entries") {
		t.Errorf("expected run-aaaa details, got:\n%s", output)
	}
	if !strings.Contains(output, "export cafe") {
		t.Errorf("expected fingerprint, got:\n%s", output)
	}
	if !strings.Contains(output, "run-cccc: FAILED") {
		t.Errorf("expected failed run, got:\n%s", output)
	}
	if strings.Index(output, "run-aaaa") > strings.Index(output, "run-cccc") {
		t.Error("runs should be listed in order of first appearance")
	}
}

func TestStatsTotalEvents(t *testing.T) {
	ts := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts},
		{Timestamp: ts},
		{Timestamp: ts},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Total Events: 3") {
		t.Errorf("expected 3 total events in output, got:\n%s", buf.String())
	}
}

func TestStatsTimeRange(t *testing.T) {
	start := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)

	path := createTestLogFile(t, []log.Event{{Timestamp: start}, {Timestamp: end}})

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "1h0m0s") {
		t.Errorf("expected 1h0m0s duration in output, got:\n%s", output)
	}
}

func TestStatsErrorCount(t *testing.T) {
	ts := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts},
		{Timestamp: ts, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "error 1"}},
		{Timestamp: ts, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "error 2"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStatsCommand(path, &buf); err != nil {
		t.Fatalf("RunStatsCommand failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Errors: 2") {
		t.Errorf("expected 2 errors in output, got:\n%s", buf.String())
	}
}
