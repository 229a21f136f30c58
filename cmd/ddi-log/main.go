// Command ddi-log views and analyzes generator trace files.
//
// Trace files are written by ddi-gen when run with the -trace flag.
//
// Usage:
//
//	ddi-log <command> [flags] <file.dlog>
//
// Examples:
//
//	# View only diagnostics of the parse stage
//	ddi-log view -stage parse -category diagnostic run.dlog
//
//	# Everything that happened to DDI 141
//	ddi-log view -ddi 141 run.dlog
//
//	# Export to CSV
//	ddi-log export -format csv -o run.csv run.dlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/open-agriculture/isobus-ddi/cmd/ddi-log/commands"
	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

const usage = `ddi-log - DDI Generator Trace Analyzer

Usage:
  ddi-log <command> [flags] <file.dlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "ddi-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// filterFlags registers the shared filter flags on fs.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	var o commands.FilterOptions
	fs.StringVar(&o.RunID, "run-id", "", "Filter by run ID")
	fs.StringVar(&o.Stage, "stage", "", "Filter by stage (fetch, parse, render, write, store)")
	fs.StringVar(&o.Category, "category", "", "Filter by category (info, diagnostic, error)")
	fs.StringVar(&o.DDI, "ddi", "", "Filter by data dictionary identifier")
	fs.StringVar(&o.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&o.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return &o
}

func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func buildFilter(o *commands.FilterOptions) log.Filter {
	filter, err := o.Build()
	if err != nil {
		fail(err)
	}
	return filter
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddi-log view - View trace file in human-readable format

Usage:
  ddi-log view [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if err := commands.RunView(path, buildFilter(opts), os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddi-log export - Export trace file to JSON or CSV format

Usage:
  ddi-log export [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if err := commands.RunExport(path, buildFilter(opts), *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddi-log filter - Filter trace file and write to new file

Usage:
  ddi-log filter [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	n, err := commands.RunFilter(path, *output, buildFilter(opts))
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddi-log stats - Show statistics about the trace file

Usage:
  ddi-log stats <file.dlog>

`)
	}
	path := parseArgs(fs, args)

	if err := commands.RunStatsCommand(path, os.Stdout); err != nil {
		fail(err)
	}
}
