// Package generator runs the fetch, parse, render and write pipeline that
// regenerates the data dictionary artifacts.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/open-agriculture/isobus-ddi/internal/config"
	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/exportparse"
	"github.com/open-agriculture/isobus-ddi/pkg/fetch"
	"github.com/open-agriculture/isobus-ddi/pkg/log"
	"github.com/open-agriculture/isobus-ddi/pkg/render"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

// Artifact kinds reported in the trace.
const (
	KindHeader  = "header"
	KindSource  = "source"
	KindGoTable = "go-table"
)

// Options wires the generator's collaborators. Only Config is required.
type Options struct {
	Config config.GeneratorConfig

	// Fetcher overrides the one built from Config.
	Fetcher *fetch.Fetcher

	// Trace receives run events. Nil discards them.
	Trace log.Logger

	// History records the run when set.
	History *store.Store

	// Logger for operational messages. Defaults to slog.Default().
	Logger *slog.Logger

	// RunID of the run. Empty generates one.
	RunID string

	// Now stamps the generated files. Defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a successful run.
type Result struct {
	RunID        string
	Fetch        *fetch.Result
	Entries      []ddi.Entry
	Diagnostics  []exportparse.Diagnostic
	RecordStarts int
	Artifacts    []string

	// Diff against the previous completed run, when history is enabled and
	// one exists.
	Diff *store.Diff
}

// Generator regenerates the artifacts.
type Generator struct {
	cfg     config.GeneratorConfig
	fetcher *fetch.Fetcher
	rec     *log.Recorder
	history *store.Store
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		cfg:     opts.Config,
		fetcher: opts.Fetcher,
		history: opts.History,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.fetcher == nil {
		g.fetcher = fetch.New(fetch.Config{
			URL:       g.cfg.URL,
			CachePath: g.cfg.CachePath,
			Timeout:   g.cfg.Timeout,
		}, fetch.WithLogger(g.logger))
	}
	g.rec = log.NewRecorder(opts.Trace, opts.RunID)
	return g
}

// RunID returns the identifier of the run.
func (g *Generator) RunID() string {
	return g.rec.RunID()
}

// stageError remembers which stage failed.
type stageError struct {
	stage log.Stage
	err   error
}

func (e *stageError) Error() string { return e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func fail(stage log.Stage, err error) error {
	return &stageError{stage: stage, err: err}
}

// Run executes the pipeline once. Any returned error is fatal for the run;
// parse problems are reported as diagnostics and do not fail it.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: g.RunID()}

	if g.history != nil {
		err := g.history.CreateRun(&store.Run{ID: res.RunID, SourceURL: g.fetcher.Config().URL})
		if err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
	}

	err := g.run(ctx, res)
	if err != nil {
		stage := log.StageStore
		var se *stageError
		if errors.As(err, &se) {
			stage = se.stage
		}
		g.rec.Error(stage, err, stage.String())
		if g.history != nil {
			if ferr := g.history.FailRun(res.RunID, err); ferr != nil {
				g.logger.Warn("could not mark run failed", "run_id", res.RunID, "error", ferr)
			}
		}
		return nil, err
	}
	return res, nil
}

func (g *Generator) run(ctx context.Context, res *Result) error {
	fr, err := g.fetch(ctx)
	if err != nil {
		return fail(log.StageFetch, err)
	}
	res.Fetch = fr
	if g.history != nil {
		if err := g.history.SetFingerprint(res.RunID, fr.Fingerprint); err != nil {
			return fail(log.StageStore, fmt.Errorf("record fingerprint: %w", err))
		}
	}

	if err := g.parse(fr.Path, res); err != nil {
		return fail(log.StageParse, err)
	}

	if err := g.render(ctx, res); err != nil {
		return err
	}

	if g.history != nil {
		if err := g.record(res); err != nil {
			return fail(log.StageStore, err)
		}
	}
	return nil
}

func (g *Generator) fetch(ctx context.Context) (*fetch.Result, error) {
	start := g.now()
	var (
		fr  *fetch.Result
		err error
	)
	if g.cfg.Offline {
		fr, err = g.fetcher.Cached()
	} else {
		fr, err = g.fetcher.Fetch(ctx)
	}
	if err != nil {
		return nil, err
	}
	fc := g.fetcher.Config()
	g.rec.Fetch(log.FetchEvent{
		URL:         fc.URL,
		CachePath:   fr.Path,
		ContentType: fr.ContentType,
		Size:        fr.Size,
		Fingerprint: fr.Fingerprint,
		Offline:     fr.Offline,
		Duration:    g.now().Sub(start),
	})
	return fr, nil
}

func (g *Generator) parse(path string, res *Result) error {
	start := g.now()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	p := exportparse.NewParser(f, exportparse.WithDiagnosticHandler(func(d exportparse.Diagnostic) {
		g.logger.Warn("export diagnostic", "line", d.Line, "kind", d.Kind, "message", d.Message)
		g.rec.Diagnostic(log.DiagnosticEvent{
			Line:    d.Line,
			Kind:    string(d.Kind),
			DDI:     d.DDI,
			Message: d.Message,
		})
	}))
	for e, err := range p.All() {
		if err != nil {
			return fmt.Errorf("read export: %w", err)
		}
		g.rec.Record(e.DDI, e.Name, p.Line())
		res.Entries = append(res.Entries, e)
	}
	res.Diagnostics = p.Diagnostics()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind export: %w", err)
	}
	starts, err := exportparse.CountRecords(f)
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	res.RecordStarts = starts
	if starts != len(res.Entries) {
		g.logger.Warn("record count mismatch", "record_starts", starts, "entries", len(res.Entries))
	}

	g.rec.Summary(log.SummaryEvent{
		Entries:      len(res.Entries),
		RecordStarts: starts,
		Diagnostics:  len(res.Diagnostics),
		Lines:        p.Line(),
		Duration:     g.now().Sub(start),
	})
	g.logger.Info("export parsed", "entries", len(res.Entries), "diagnostics", len(res.Diagnostics))
	return nil
}

func (g *Generator) render(ctx context.Context, res *Result) error {
	r := render.New(render.Options{
		Authors:     g.cfg.Authors,
		Copyright:   g.cfg.Copyright,
		Namespace:   g.cfg.Namespace,
		IncludePath: g.cfg.IncludePath,
		GoPackage:   g.cfg.GoPackage,
		Now:         g.now,
	})

	header, err := r.Header(res.Entries)
	if err != nil {
		return fail(log.StageRender, fmt.Errorf("render header: %w", err))
	}
	source, err := r.Source(res.Entries)
	if err != nil {
		return fail(log.StageRender, fmt.Errorf("render source: %w", err))
	}

	// Everything is rendered before the first write so a failing Go table
	// leaves the existing header and source untouched.
	var code []byte
	if g.cfg.GoPath != "" {
		var renderErr error
		code, renderErr = r.GoTable(res.Entries)
		if renderErr != nil {
			if err := render.WriteGoTable(ctx, g.cfg.GoPath, code, renderErr); err != nil {
				return fail(log.StageRender, fmt.Errorf("render go table: %w", err))
			}
		}
	}

	if err := g.write(ctx, res, KindHeader, g.cfg.HeaderPath, header); err != nil {
		return err
	}
	if err := g.write(ctx, res, KindSource, g.cfg.SourcePath, source); err != nil {
		return err
	}
	if g.cfg.GoPath == "" {
		return nil
	}
	if err := render.WriteGoTable(ctx, g.cfg.GoPath, code, nil); err != nil {
		return fail(log.StageWrite, fmt.Errorf("write %s: %w", g.cfg.GoPath, err))
	}
	g.artifact(res, KindGoTable, g.cfg.GoPath, len(code))
	return nil
}

func (g *Generator) write(ctx context.Context, res *Result, kind, path string, data []byte) error {
	if err := render.WriteFile(ctx, path, data); err != nil {
		return fail(log.StageWrite, fmt.Errorf("write %s: %w", path, err))
	}
	g.artifact(res, kind, path, len(data))
	return nil
}

func (g *Generator) artifact(res *Result, kind, path string, size int) {
	res.Artifacts = append(res.Artifacts, path)
	g.rec.Artifact(log.StageWrite, log.ArtifactEvent{
		Path:    path,
		Kind:    kind,
		Size:    size,
		Entries: len(res.Entries),
	})
	g.logger.Info("artifact written", "kind", kind, "path", path, "bytes", size)
}

func (g *Generator) record(res *Result) error {
	if err := g.history.SaveEntries(res.RunID, res.Entries); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	if err := g.history.CompleteRun(res.RunID, len(res.Entries), len(res.Diagnostics)); err != nil {
		return fmt.Errorf("complete run: %w", err)
	}

	prev, err := g.history.LatestCompleted(res.RunID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("previous run: %w", err)
	}
	diff, err := g.history.Diff(prev.ID, res.RunID)
	if err != nil {
		return fmt.Errorf("diff against %s: %w", prev.ID, err)
	}
	res.Diff = diff
	g.logger.Info("compared with previous run",
		"previous", prev.ID,
		"added", len(diff.Added),
		"removed", len(diff.Removed),
		"changed", len(diff.Changed))
	return nil
}
