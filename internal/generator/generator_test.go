package generator

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/internal/config"
	"github.com/open-agriculture/isobus-ddi/pkg/exportparse"
	"github.com/open-agriculture/isobus-ddi/pkg/fetch"
	"github.com/open-agriculture/isobus-ddi/pkg/log"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

var fixedNow = func() time.Time { return time.Date(2025, time.January, 16, 9, 0, 0, 0, time.UTC) }

func exportServer(t *testing.T) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", "export.txt"))
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, url string) config.GeneratorConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default().Generator
	cfg.URL = url
	cfg.CachePath = filepath.Join(dir, "export.txt")
	cfg.HeaderPath = filepath.Join(dir, "out", "isobus_data_dictionary.hpp")
	cfg.SourcePath = filepath.Join(dir, "out", "isobus_data_dictionary.cpp")
	cfg.Timeout = 5 * time.Second
	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunWritesArtifacts(t *testing.T) {
	srv := exportServer(t)
	cfg := testConfig(t, srv.URL)

	res, err := New(Options{Config: cfg, Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Entries, 3)
	assert.Equal(t, 4, res.RecordStarts)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, exportparse.KindIncompleteRecord, res.Diagnostics[0].Kind)
	assert.Equal(t, []string{cfg.HeaderPath, cfg.SourcePath}, res.Artifacts)
	assert.False(t, res.Fetch.Offline)
	assert.NotEmpty(t, res.Fetch.Fingerprint)

	header := readFile(t, cfg.HeaderPath)
	assert.Contains(t, header, "static const Entry DDI_ENTRIES[3];")
	assert.Contains(t, header, "This file was generated January 16, 2025.")

	source := readFile(t, cfg.SourcePath)
	assert.Contains(t, source, `{ 141, "Actual Work State", "", "n.a.", 1.0f, std::make_pair(0.0f, 3.0f) },`)
	assert.NotContains(t, source, "Actual Net Weight")
}

func TestRunWritesGoTable(t *testing.T) {
	srv := exportServer(t)
	cfg := testConfig(t, srv.URL)
	cfg.GoPath = filepath.Join(filepath.Dir(cfg.HeaderPath), "table_gen.go")

	res, err := New(Options{Config: cfg, Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, res.Artifacts, cfg.GoPath)

	code := readFile(t, cfg.GoPath)
	assert.Contains(t, code, "package ddi")
	assert.Contains(t, code, `"Actual Work State"`)
}

func TestRunGoTableFailureWritesNothing(t *testing.T) {
	srv := exportServer(t)
	cfg := testConfig(t, srv.URL)
	cfg.GoPath = filepath.Join(filepath.Dir(cfg.HeaderPath), "table_gen.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.HeaderPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.HeaderPath, []byte("previous header"), 0o644))

	// Not a valid package clause, so goimports rejects the table.
	cfg.GoPackage = "not a package"

	res, err := New(Options{Config: cfg, Now: fixedNow}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goimports")
	assert.Nil(t, res)

	assert.Equal(t, "previous header", readFile(t, cfg.HeaderPath))
	assert.NoFileExists(t, cfg.SourcePath)
	assert.NoFileExists(t, cfg.GoPath)
	assert.Contains(t, readFile(t, cfg.GoPath+".broken"), "package not a package")
}

func TestRunOffline(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/unreachable")
	cfg.Offline = true
	data, err := os.ReadFile(filepath.Join("testdata", "export.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.CachePath, data, 0o644))

	res, err := New(Options{Config: cfg, Now: fixedNow}).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Fetch.Offline)
	assert.Len(t, res.Entries, 3)
}

func TestRunOfflineWithoutCache(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/unreachable")
	cfg.Offline = true

	_, err := New(Options{Config: cfg}).Run(context.Background())
	assert.ErrorIs(t, err, fetch.ErrNoCache)
	assert.NoFileExists(t, cfg.HeaderPath)
}

func TestRunFetchFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	tracePath := filepath.Join(t.TempDir(), "run.dlog")
	trace, err := log.NewFileLogger(tracePath)
	require.NoError(t, err)

	_, err = New(Options{Config: cfg, Trace: trace}).Run(context.Background())
	require.NoError(t, trace.Close())
	assert.ErrorIs(t, err, fetch.ErrFetchFailed)
	assert.NoFileExists(t, cfg.SourcePath)

	r, err := log.NewReader(tracePath)
	require.NoError(t, err)
	defer r.Close()
	ev, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, ev.Error)
	assert.Equal(t, log.StageFetch, ev.Stage)
	assert.Equal(t, log.CategoryError, ev.Category)
}

func TestRunEmptyExportFailsRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ISO 11783-11 Online Data Base\n")
	}))
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	_, err := New(Options{Config: cfg}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

func TestRunTrace(t *testing.T) {
	srv := exportServer(t)
	cfg := testConfig(t, srv.URL)
	tracePath := filepath.Join(t.TempDir(), "run.dlog")
	trace, err := log.NewFileLogger(tracePath)
	require.NoError(t, err)

	g := New(Options{Config: cfg, Trace: trace, RunID: "run-1", Now: fixedNow})
	_, err = g.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, trace.Close())

	r, err := log.NewReader(tracePath)
	require.NoError(t, err)
	defer r.Close()

	counts := map[string]int{}
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "run-1", ev.RunID)
		switch {
		case ev.Fetch != nil:
			counts["fetch"]++
		case ev.Record != nil:
			counts["record"]++
		case ev.Diagnostic != nil:
			counts["diagnostic"]++
		case ev.Summary != nil:
			counts["summary"]++
			assert.Equal(t, 3, ev.Summary.Entries)
			assert.Equal(t, 4, ev.Summary.RecordStarts)
		case ev.Artifact != nil:
			counts["artifact"]++
		}
	}
	assert.Equal(t, map[string]int{
		"fetch": 1, "record": 3, "diagnostic": 1, "summary": 1, "artifact": 2,
	}, counts)
}

func TestRunRecordsHistory(t *testing.T) {
	srv := exportServer(t)
	cfg := testConfig(t, srv.URL)
	history, err := store.Open(":memory:")
	require.NoError(t, err)
	defer history.Close()

	first, err := New(Options{Config: cfg, History: history, RunID: "first"}).Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, first.Diff)

	second, err := New(Options{Config: cfg, History: history, RunID: "second"}).Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, second.Diff)
	assert.True(t, second.Diff.Empty())

	run, err := history.GetRun("second")
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusCompleted, run.Status)
	assert.Equal(t, 3, run.EntryCount)
	assert.Equal(t, 1, run.DiagnosticCount)
	assert.Equal(t, second.Fetch.Fingerprint, run.Fingerprint)

	entries, err := history.Entries("second")
	require.NoError(t, err)
	assert.Equal(t, second.Entries, entries)
}

func TestRunRecordsFailure(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/unreachable")
	cfg.Offline = true
	history, err := store.Open(":memory:")
	require.NoError(t, err)
	defer history.Close()

	_, err = New(Options{Config: cfg, History: history, RunID: "broken"}).Run(context.Background())
	require.Error(t, err)

	run, err := history.GetRun("broken")
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusFailed, run.Status)
	assert.Contains(t, run.ErrorMessage, "no cached export")
}

func TestRunIDGenerated(t *testing.T) {
	g := New(Options{Config: config.Default().Generator})
	assert.Len(t, g.RunID(), 36)
}
