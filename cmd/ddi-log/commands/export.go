package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

// RunExport exports matching events as JSON lines or CSV.
func RunExport(path string, filter log.Filter, format, output string) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "stage", "category", "type", "ddi", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		ddiCol := ""
		if id, ok := event.DDI(); ok {
			ddiCol = strconv.Itoa(int(id))
		}
		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.RunID,
			event.Stage.String(),
			event.Category.String(),
			typeLabel(event),
			ddiCol,
			detail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func detail(event log.Event) string {
	switch {
	case event.Fetch != nil:
		return event.Fetch.Fingerprint
	case event.Record != nil:
		return event.Record.Name
	case event.Diagnostic != nil:
		return event.Diagnostic.Kind + ": " + event.Diagnostic.Message
	case event.Artifact != nil:
		return event.Artifact.Path
	case event.Summary != nil:
		return fmt.Sprintf("%d entries", event.Summary.Entries)
	case event.Error != nil:
		return event.Error.Message
	}
	return ""
}
