// Command ddi-gen regenerates the ISOBUS data dictionary lookup table.
//
// It downloads the plaintext export of the ISO 11783-11 online database,
// parses every DD entity and writes a C++ header and source pair (and
// optionally a Go table) containing the identifiers.
//
// Usage:
//
//	ddi-gen [flags]
//
// Examples:
//
//	# Regenerate with the default AgIsoStack++ layout
//	ddi-gen
//
//	# Reuse the last download, keep a trace and a history
//	ddi-gen -offline -trace run.dlog -db history.db
//
//	# Refresh the Go table of this module
//	ddi-gen -out-go pkg/ddi/table_gen.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/open-agriculture/isobus-ddi/internal/config"
	"github.com/open-agriculture/isobus-ddi/internal/generator"
	"github.com/open-agriculture/isobus-ddi/pkg/log"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	url        string
	cache      string
	outHeader  string
	outSource  string
	outGo      string
	offline    bool
	timeout    time.Duration
	trace      string
	db         string
	logLevel   string
}

func parseFlags(args []string) (*flags, error) {
	var f flags
	fs := flag.NewFlagSet("ddi-gen", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&f.url, "url", "", "Export URL")
	fs.StringVar(&f.cache, "cache", "", "Local path the export is cached at")
	fs.StringVar(&f.outHeader, "out-header", "", "C++ header output path")
	fs.StringVar(&f.outSource, "out-source", "", "C++ source output path")
	fs.StringVar(&f.outGo, "out-go", "", "Go table output path (not rendered when empty)")
	fs.BoolVar(&f.offline, "offline", false, "Use the cached export instead of downloading")
	fs.DurationVar(&f.timeout, "timeout", -1, "Download timeout, 0 for none (default from config)")
	fs.StringVar(&f.trace, "trace", "", "Write a run trace to this .dlog file")
	fs.StringVar(&f.db, "db", "", "Record the run in this SQLite history database")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return &f, nil
}

// apply overrides config values with the flags that were given.
func (f *flags) apply(cfg *config.GeneratorConfig) {
	if f.url != "" {
		cfg.URL = f.url
	}
	if f.cache != "" {
		cfg.CachePath = f.cache
	}
	if f.outHeader != "" {
		cfg.HeaderPath = f.outHeader
	}
	if f.outSource != "" {
		cfg.SourcePath = f.outSource
	}
	if f.outGo != "" {
		cfg.GoPath = f.outGo
	}
	if f.offline {
		cfg.Offline = true
	}
	if f.timeout >= 0 {
		cfg.Timeout = f.timeout
	}
	if f.trace != "" {
		cfg.TracePath = f.trace
	}
	if f.db != "" {
		cfg.HistoryDB = f.db
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	level, err := parseLevel(f.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(&cfg.Generator)
	if err := cfg.Validate(); err != nil {
		return err
	}
	gc := cfg.Generator

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := generator.Options{Config: gc, Logger: logger}

	var traces []log.Logger
	if gc.TracePath != "" {
		fl, err := log.NewFileLogger(gc.TracePath)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer fl.Close()
		traces = append(traces, fl)
	}
	if level <= slog.LevelDebug {
		traces = append(traces, log.NewSlogAdapter(logger))
	}
	if len(traces) > 0 {
		opts.Trace = log.NewMultiLogger(traces...)
	}

	if gc.HistoryDB != "" {
		history, err := store.Open(gc.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer history.Close()
		opts.History = history
	}

	g := generator.New(opts)
	logger.Info("starting run", "run_id", g.RunID(), "url", gc.URL, "offline", gc.Offline)

	res, err := g.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("run complete",
		"run_id", res.RunID,
		"entries", len(res.Entries),
		"diagnostics", len(res.Diagnostics),
		"artifacts", len(res.Artifacts))
	if res.Diff != nil && !res.Diff.Empty() {
		fmt.Printf("Table changed since %s: %d added, %d removed, %d changed\n",
			res.Diff.OldRunID, len(res.Diff.Added), len(res.Diff.Removed), len(res.Diff.Changed))
	}
	return nil
}
