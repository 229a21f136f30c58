// Package commands implements the ddi-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] STAGE CATEGORY Type
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [run:%s] %-6s %s %s\n",
		ts, shortenRunID(event.RunID), event.Stage, event.Category, typeLabel(event))

	switch {
	case event.Fetch != nil:
		formatFetchDetails(w, event.Fetch)
	case event.Record != nil:
		fmt.Fprintf(w, "  DDI %d: %s (line %d)\n", event.Record.DDI, event.Record.Name, event.Record.Line)
	case event.Diagnostic != nil:
		formatDiagnosticDetails(w, event.Diagnostic)
	case event.Artifact != nil:
		fmt.Fprintf(w, "  %s %s: %d bytes, %d entries\n",
			event.Artifact.Kind, event.Artifact.Path, event.Artifact.Size, event.Artifact.Entries)
	case event.Summary != nil:
		formatSummaryDetails(w, event.Summary)
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

func typeLabel(event log.Event) string {
	switch {
	case event.Fetch != nil:
		return "Fetch"
	case event.Record != nil:
		return "Record"
	case event.Diagnostic != nil:
		return "Diagnostic"
	case event.Artifact != nil:
		return "Artifact"
	case event.Summary != nil:
		return "Summary"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFetchDetails(w io.Writer, f *log.FetchEvent) {
	if f.Offline {
		fmt.Fprintf(w, "  Cache: %s (offline)\n", f.CachePath)
	} else {
		fmt.Fprintf(w, "  URL: %s\n", f.URL)
		fmt.Fprintf(w, "  Cache: %s\n", f.CachePath)
	}
	if f.ContentType != "" {
		fmt.Fprintf(w, "  Content-Type: %s\n", f.ContentType)
	}
	fmt.Fprintf(w, "  Size: %d bytes\n", f.Size)
	if f.Fingerprint != "" {
		fmt.Fprintf(w, "  Fingerprint: %s\n", f.Fingerprint)
	}
	if f.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(f.Duration))
	}
}

func formatDiagnosticDetails(w io.Writer, d *log.DiagnosticEvent) {
	fmt.Fprintf(w, "  Line %d: %s", d.Line, d.Kind)
	if d.DDI != nil {
		fmt.Fprintf(w, " (DDI %d)", *d.DDI)
	}
	fmt.Fprintln(w)
	if d.Message != "" {
		fmt.Fprintf(w, "  %s\n", d.Message)
	}
}

func formatSummaryDetails(w io.Writer, s *log.SummaryEvent) {
	fmt.Fprintf(w, "  Entries: %d of %d records\n", s.Entries, s.RecordStarts)
	fmt.Fprintf(w, "  Diagnostics: %d\n", s.Diagnostics)
	fmt.Fprintf(w, "  Lines: %d\n", s.Lines)
	if s.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(s.Duration))
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseStageFlag parses a stage name (case-insensitive).
func ParseStageFlag(s string) (log.Stage, error) {
	switch strings.ToLower(s) {
	case "fetch":
		return log.StageFetch, nil
	case "parse":
		return log.StageParse, nil
	case "render":
		return log.StageRender, nil
	case "write":
		return log.StageWrite, nil
	case "store":
		return log.StageStore, nil
	default:
		return 0, fmt.Errorf("invalid stage: %s (must be fetch, parse, render, write or store)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "info":
		return log.CategoryInfo, nil
	case "diagnostic":
		return log.CategoryDiagnostic, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be info, diagnostic or error)", s)
	}
}

// ParseDDIFlag parses a data dictionary identifier.
func ParseDDIFlag(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid DDI: %s", s)
	}
	return uint16(v), nil
}

// FilterOptions holds the textual filter flags shared by all commands.
type FilterOptions struct {
	RunID     string
	Stage     string
	Category  string
	DDI       string
	TimeStart string
	TimeEnd   string
}

// Build converts the flags into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{RunID: o.RunID}

	if o.Stage != "" {
		s, err := ParseStageFlag(o.Stage)
		if err != nil {
			return filter, err
		}
		filter.Stage = &s
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if o.DDI != "" {
		id, err := ParseDDIFlag(o.DDI)
		if err != nil {
			return filter, err
		}
		filter.DDI = &id
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// RunView prints every matching event.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
