package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

func seedHistory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	tables := map[string][]ddi.Entry{
		"run-a": {
			{DDI: 1, Name: "Setpoint Volume", UnitName: "n.a.", Resolution: 1},
			{DDI: 2, Name: "Actual Volume", UnitName: "n.a.", Resolution: 1},
		},
		"run-b": {
			{DDI: 1, Name: "Setpoint Volume", UnitName: "n.a.", Resolution: 0.01},
			{DDI: 141, Name: "Actual Work State", UnitName: "n.a.", Resolution: 1},
		},
	}
	for i, id := range []string{"run-a", "run-b"} {
		started := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.CreateRun(&store.Run{ID: id, SourceURL: "https://example.org", StartedAt: &started}))
		require.NoError(t, s.SaveEntries(id, tables[id]))
		require.NoError(t, s.CompleteRun(id, len(tables[id]), 0))
	}
	return path
}

func TestListRuns(t *testing.T) {
	db := seedHistory(t)

	var buf bytes.Buffer
	require.NoError(t, runList([]string{"-db", db}, &buf))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "run-a")
	assert.Contains(t, out, "completed")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("run-b")), bytes.Index(buf.Bytes(), []byte("run-a")))
}

func TestDiffLatestTwo(t *testing.T) {
	db := seedHistory(t)

	var buf bytes.Buffer
	require.NoError(t, runDiff([]string{"-db", db}, &buf))

	out := buf.String()
	assert.Contains(t, out, "run-a -> run-b")
	assert.Contains(t, out, "+   141 Actual Work State")
	assert.Contains(t, out, "-     2 Actual Volume")
	assert.Contains(t, out, "~     1 Setpoint Volume (resolution)")
	assert.Contains(t, out, "1 added, 1 removed, 1 changed")
}

func TestDiffExplicitRunsJSON(t *testing.T) {
	db := seedHistory(t)

	var buf bytes.Buffer
	require.NoError(t, runDiff([]string{"-db", db, "-json", "run-b", "run-b"}, &buf))
	assert.Contains(t, buf.String(), `"old_run_id": "run-b"`)
	assert.NotContains(t, buf.String(), `"added"`)
}

func TestDiffUnknownRun(t *testing.T) {
	db := seedHistory(t)
	err := runDiff([]string{"-db", db, "run-a", "missing"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMissingDatabase(t *testing.T) {
	err := runList([]string{"-db", filepath.Join(t.TempDir(), "nope.db")}, &bytes.Buffer{})
	assert.Error(t, err)
}
