// Command ddi-lookup looks up ISOBUS data dictionary identifiers.
//
// Usage:
//
//	ddi-lookup [flags] [command args...]
//
// Without a command and with -i it starts an interactive prompt.
//
// Examples:
//
//	ddi-lookup 141
//	ddi-lookup find "net weight"
//	ddi-lookup format 1 1500
//	ddi-lookup decode 18CB2A81#53018D0001000000
//	ddi-lookup -i
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/open-agriculture/isobus-ddi/cmd/ddi-lookup/interactive"
	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	interactiveMode := flag.Bool("i", false, "Start an interactive prompt")
	db := flag.String("db", "", "Use the table of the latest completed run in this history database")
	runID := flag.String("run", "", "Use the table of this run (requires -db)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddi-lookup - ISOBUS DDI Lookup

Usage:
  ddi-lookup [flags] <ddi>...
  ddi-lookup [flags] get|find|format|decode args...
  ddi-lookup -i

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	dict, err := loadDictionary(*db, *runID)
	if err != nil {
		return err
	}

	if *interactiveMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return interactive.Run(ctx, dict)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return fmt.Errorf("no command given")
	}
	_, err = interactive.NewSession(dict, os.Stdout).Execute(strings.Join(flag.Args(), " "))
	return err
}

// loadDictionary returns the standard dictionary unless a history database
// is given.
func loadDictionary(dbPath, runID string) (*ddi.Dictionary, error) {
	if dbPath == "" {
		if runID != "" {
			return nil, fmt.Errorf("-run requires -db")
		}
		return ddi.Standard(), nil
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer s.Close()

	if runID == "" {
		r, err := s.LatestCompleted("")
		if err != nil {
			return nil, fmt.Errorf("latest run: %w", err)
		}
		runID = r.ID
	}
	entries, err := s.Entries(runID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("run %s has no entries", runID)
	}
	return ddi.NewDictionary(entries), nil
}
