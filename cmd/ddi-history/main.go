// Command ddi-history inspects the generation history written by ddi-gen -db.
//
// Usage:
//
//	ddi-history <command> [flags]
//
// Commands:
//
//	list   List recorded runs, most recent first
//	diff   Compare the tables of two runs
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

const usage = `ddi-history - DDI Generation History

Usage:
  ddi-history <command> [flags]

Commands:
  list   List recorded runs, most recent first
  diff   Compare the tables of two runs (default: the two most recent)

Use "ddi-history <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "list":
		err = runList(args, os.Stdout)
	case "diff":
		err = runDiff(args, os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("history database: %w", err)
	}
	return store.Open(path)
}

func runList(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	db := fs.String("db", "history.db", "History database path")
	limit := fs.Int("n", 20, "Maximum number of runs")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := openStore(*db)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(*limit)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	printRuns(w, runs)
	return nil
}

func printRuns(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSTATUS\tENTRIES\tDIAGNOSTICS\tEXPORT")
	for _, r := range runs {
		started := "-"
		if r.StartedAt != nil {
			started = r.StartedAt.Local().Format(time.DateTime)
		}
		status := r.Status
		if r.ErrorMessage != "" {
			status += ": " + r.ErrorMessage
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID, started, status, r.EntryCount, r.DiagnosticCount, shortFingerprint(r.Fingerprint))
	}
	tw.Flush()
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	if fp == "" {
		return "-"
	}
	return fp
}

func runDiff(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	db := fs.String("db", "history.db", "History database path")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := openStore(*db)
	if err != nil {
		return err
	}
	defer s.Close()

	var oldID, newID string
	switch fs.NArg() {
	case 2:
		oldID, newID = fs.Arg(0), fs.Arg(1)
	case 0:
		latest, err := s.LatestCompleted("")
		if err != nil {
			return fmt.Errorf("latest run: %w", err)
		}
		prev, err := s.LatestCompleted(latest.ID)
		if err != nil {
			return fmt.Errorf("run before %s: %w", latest.ID, err)
		}
		oldID, newID = prev.ID, latest.ID
	default:
		return fmt.Errorf("diff takes either no run IDs or exactly two")
	}

	d, err := s.Diff(oldID, newID)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	printDiff(w, d)
	return nil
}

func printDiff(w io.Writer, d *store.Diff) {
	fmt.Fprintf(w, "%s -> %s\n", d.OldRunID, d.NewRunID)
	if d.Empty() {
		fmt.Fprintln(w, "No changes.")
		return
	}
	for _, e := range d.Added {
		fmt.Fprintf(w, "+ %5d %s\n", e.DDI, e.Name)
	}
	for _, e := range d.Removed {
		fmt.Fprintf(w, "- %5d %s\n", e.DDI, e.Name)
	}
	for _, c := range d.Changed {
		fmt.Fprintf(w, "~ %5d %s (%s)\n", c.DDI, c.New.Name, strings.Join(c.Fields, ", "))
	}
	fmt.Fprintf(w, "%d added, %d removed, %d changed\n", len(d.Added), len(d.Removed), len(d.Changed))
}
