package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByStage    map[log.Stage]int
	EventsByCategory map[log.Category]int
	DiagnosticKinds  map[string]int
	Errors           int
	Runs             map[string]*RunStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunStats holds statistics for a single generator run.
type RunStats struct {
	FirstSeen   time.Time
	LastSeen    time.Time
	Events      int
	Entries     int
	Diagnostics int
	Artifacts   int
	Fingerprint string
	Failed      bool
}

// RunStatsCommand analyzes the trace file and prints statistics.
func RunStatsCommand(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByStage:    make(map[log.Stage]int),
		EventsByCategory: make(map[log.Category]int),
		DiagnosticKinds:  make(map[string]int),
		Runs:             make(map[string]*RunStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByStage[event.Stage]++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if event.Timestamp.After(run.LastSeen) {
			run.LastSeen = event.Timestamp
		}

		switch {
		case event.Fetch != nil:
			run.Fingerprint = event.Fetch.Fingerprint
		case event.Record != nil:
			run.Entries++
		case event.Diagnostic != nil:
			run.Diagnostics++
			stats.DiagnosticKinds[event.Diagnostic.Kind]++
		case event.Artifact != nil:
			run.Artifacts++
		case event.Error != nil:
			run.Failed = true
			stats.Errors++
		}
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== DDI Generator Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration: %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for _, s := range []log.Stage{log.StageFetch, log.StageParse, log.StageRender, log.StageWrite, log.StageStore} {
		if n := stats.EventsByStage[s]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", s, n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range []log.Category{log.CategoryInfo, log.CategoryDiagnostic, log.CategoryError} {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", c, n)
		}
	}
	fmt.Fprintln(w)

	if len(stats.DiagnosticKinds) > 0 {
		fmt.Fprintln(w, "Diagnostics by Kind:")
		kinds := make([]string, 0, len(stats.DiagnosticKinds))
		for k := range stats.DiagnosticKinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %s: %d\n", k, stats.DiagnosticKinds[k])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	ids := make([]string, 0, len(stats.Runs))
	for id := range stats.Runs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Runs[ids[i]].FirstSeen.Before(stats.Runs[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		r := stats.Runs[id]
		status := "ok"
		if r.Failed {
			status = "FAILED"
		}
		fmt.Fprintf(w, "  %s: %s, %d events, %d entries, %d diagnostics, %d artifacts\n",
			shortenRunID(id), status, r.Events, r.Entries, r.Diagnostics, r.Artifacts)
		if r.Fingerprint != "" {
			fmt.Fprintf(w, "    export %s\n", r.Fingerprint)
		}
	}
}
