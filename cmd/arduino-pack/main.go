// Command arduino-pack builds the flat Arduino library from an AgIsoStack++
// checkout.
//
// Usage:
//
//	arduino-pack [-config ddi.yaml] [-root .] [-out arduino_library]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/open-agriculture/isobus-ddi/internal/config"
	"github.com/open-agriculture/isobus-ddi/pkg/arduino"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("arduino-pack", flag.ContinueOnError)
	configPath := fs.String("config", "", "Configuration file path (YAML)")
	root := fs.String("root", "", "Source tree to package (default from config)")
	output := fs.String("out", "", "Library output directory (default from config)")
	version := fs.String("version", "", "Library version (default from config)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", *logLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	ac := cfg.Arduino
	if *root != "" {
		ac.SourceRoot = *root
	}
	if *output != "" {
		ac.OutputDir = *output
	}
	if *version != "" {
		ac.Version = *version
	}

	report, err := arduino.Package(ctx, options(ac, logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Library:  %s\n", report.OutputDir)
	fmt.Fprintf(out, "Copied:   %d files\n", len(report.Copied))
	fmt.Fprintf(out, "Pruned:   %d files\n", len(report.Pruned))
	fmt.Fprintf(out, "Headers:  %d in %s\n", len(report.Headers), report.Umbrella)
	fmt.Fprintf(out, "Patched:  %d files\n", len(report.Patched))
	for _, name := range report.Overwritten {
		fmt.Fprintf(out, "Warning: %s exists in more than one directory\n", name)
	}
	return nil
}

func options(ac config.ArduinoConfig, logger *slog.Logger) arduino.Options {
	opts := arduino.Options{
		SourceRoot: ac.SourceRoot,
		OutputDir:  ac.OutputDir,
		Properties: arduino.Properties{
			Name:          ac.Name,
			Version:       ac.Version,
			License:       ac.License,
			Author:        ac.Author,
			Maintainer:    ac.Maintainer,
			Sentence:      ac.Sentence,
			Paragraph:     ac.Paragraph,
			Category:      ac.Category,
			Architectures: ac.Architecture,
			URL:           ac.URL,
		},
		Logger: logger,
	}
	if len(ac.Prune) > 0 {
		opts.Prune = ac.Prune
	}
	return opts
}
