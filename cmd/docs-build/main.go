// Command docs-build prepares the Sphinx documentation build.
//
// Usage:
//
//	docs-build <command> [flags]
//
// Commands:
//
//	conf     Render sphinx/source/conf.py from the docs configuration
//	prepare  Run doxygen when building on Read the Docs
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/open-agriculture/isobus-ddi/internal/config"
	"github.com/open-agriculture/isobus-ddi/pkg/docbuild"
)

const usage = `docs-build - Sphinx documentation helper

Usage:
  docs-build <command> [flags]

Commands:
  conf     Render conf.py from the docs configuration
  prepare  Generate Doxygen XML when READTHEDOCS=True

Use "docs-build <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "conf":
		err = runConf(ctx, args, os.Stdout)
	case "prepare":
		err = runPrepare(ctx, args, os.Stdout, docbuild.PrepareOptions{})
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadDocs(fs *flag.FlagSet, args []string) (*config.DocsConfig, error) {
	configPath := fs.String("config", "", "Configuration file path (YAML)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	return &cfg.Docs, nil
}

func runConf(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("conf", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (default from config, - for stdout)")
	release := fs.String("release", "", "Override the release")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: docs-build conf [flags]

Render the Sphinx conf.py for the C++ API documentation.

Flags:
`)
		fs.PrintDefaults()
	}

	docs, err := loadDocs(fs, args)
	if err != nil {
		return err
	}
	if *release != "" {
		docs.Release = *release
	}

	path := docs.ConfPath
	if *output != "" {
		path = *output
	}
	if path == "-" {
		data, err := docbuild.RenderSphinxConf(docs.Config)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if err := docbuild.WriteSphinxConf(ctx, path, docs.Config); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func runPrepare(ctx context.Context, args []string, out io.Writer, opts docbuild.PrepareOptions) error {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	dir := fs.String("dir", "", "Directory holding the Doxyfile (default from config)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: docs-build prepare [flags]

Generate the Doxygen XML read by Breathe. Does nothing unless the
READTHEDOCS environment variable is "True".

Flags:
`)
		fs.PrintDefaults()
	}

	docs, err := loadDocs(fs, args)
	if err != nil {
		return err
	}
	opts.DoxygenDir = docs.DoxygenDir
	if *dir != "" {
		opts.DoxygenDir = *dir
	}

	ran, err := docbuild.Prepare(ctx, opts)
	if err != nil {
		return err
	}
	if ran {
		fmt.Fprintf(out, "Generated Doxygen XML in %s\n", opts.DoxygenDir)
	} else {
		fmt.Fprintln(out, "Not on Read the Docs, skipping doxygen")
	}
	return nil
}
