package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var (
	workState = ddi.Entry{DDI: 141, Name: "Actual Work State", UnitName: "n.a.", Resolution: 1, DisplayRange: ddi.Range{Max: 3}}
	volume    = ddi.Entry{DDI: 1, Name: "Setpoint Volume Per Area Application Rate as [mm3/m2]", UnitSymbol: "mm³/m²", UnitName: "Capacity per area unit", Resolution: 0.01, DisplayRange: ddi.Range{Max: 21474836.47}}
	reserved  = ddi.Entry{DDI: 65535, Name: "Reserved", UnitName: "n.a."}
)

func TestCreateAndGetRun(t *testing.T) {
	s := newTestStore(t)

	run := &Run{ID: "run-1", SourceURL: "https://example.test/export"}
	require.NoError(t, s.CreateRun(run))
	require.NotNil(t, run.StartedAt)

	got, err := s.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/export", got.SourceURL)
	assert.Equal(t, RunStatusRunning, got.Status)
	assert.Equal(t, "1.0", got.ToolVersion)
	assert.Empty(t, got.Fingerprint)
	assert.Nil(t, got.CompletedAt)
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetRun("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteRun(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateRun(&Run{ID: "r", SourceURL: "u", StartedAt: &start}))
	s.now = func() time.Time { return start.Add(1500 * time.Millisecond) }

	require.NoError(t, s.SetFingerprint("r", "abc123"))
	require.NoError(t, s.CompleteRun("r", 724, 2))

	got, err := s.GetRun("r")
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, got.Status)
	assert.Equal(t, 724, got.EntryCount)
	assert.Equal(t, 2, got.DiagnosticCount)
	assert.Equal(t, "abc123", got.Fingerprint)
	assert.Equal(t, "1.5s", got.Duration)
}

func TestFailRun(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRun(&Run{ID: "r", SourceURL: "u"}))
	require.NoError(t, s.FailRun("r", errors.New("fetch failed: 503")))

	got, err := s.GetRun("r")
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, got.Status)
	assert.Equal(t, "fetch failed: 503", got.ErrorMessage)

	assert.ErrorIs(t, s.FailRun("nope", nil), ErrNotFound)
}

func TestSaveEntriesKeepsOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRun(&Run{ID: "r", SourceURL: "u"}))

	in := []ddi.Entry{workState, volume, reserved}
	require.NoError(t, s.SaveEntries("r", in))
	got, err := s.Entries("r")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	// Saving again replaces the table.
	require.NoError(t, s.SaveEntries("r", in[:1]))
	got, err = s.Entries("r")
	require.NoError(t, err)
	assert.Equal(t, in[:1], got)
}

func TestSaveEntriesUnknownRun(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveEntries("ghost", []ddi.Entry{volume}))
}

func TestListRunsAndLatest(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		at := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.CreateRun(&Run{ID: id, SourceURL: "u", StartedAt: &at}))
	}
	require.NoError(t, s.CompleteRun("a", 1, 0))
	require.NoError(t, s.CompleteRun("b", 1, 0))

	runs, err := s.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].ID)

	runs, err = s.ListRuns(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	latest, err := s.LatestCompleted("c")
	require.NoError(t, err)
	assert.Equal(t, "b", latest.ID)

	latest, err = s.LatestCompleted("b")
	require.NoError(t, err)
	assert.Equal(t, "a", latest.ID)
}

func TestLatestCompletedNone(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LatestCompleted("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRunCascades(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRun(&Run{ID: "r", SourceURL: "u"}))
	require.NoError(t, s.SaveEntries("r", []ddi.Entry{volume}))
	require.NoError(t, s.DeleteRun("r"))

	entries, err := s.Entries("r")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiff(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRun(&Run{ID: "old", SourceURL: "u"}))
	require.NoError(t, s.CreateRun(&Run{ID: "new", SourceURL: "u"}))

	renamed := workState
	renamed.Name = "Actual Work State (section)"
	renamed.DisplayRange.Max = 4

	require.NoError(t, s.SaveEntries("old", []ddi.Entry{volume, workState}))
	require.NoError(t, s.SaveEntries("new", []ddi.Entry{renamed, reserved}))

	d, err := s.Diff("old", "new")
	require.NoError(t, err)
	assert.Equal(t, "old", d.OldRunID)
	assert.False(t, d.Empty())

	require.Len(t, d.Added, 1)
	assert.Equal(t, uint16(65535), d.Added[0].DDI)
	require.Len(t, d.Removed, 1)
	assert.Equal(t, uint16(1), d.Removed[0].DDI)
	require.Len(t, d.Changed, 1)
	assert.Equal(t, []string{"name", "display_range"}, d.Changed[0].Fields)
	assert.Equal(t, workState, d.Changed[0].Old)
}

func TestDiffUnknownRun(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRun(&Run{ID: "old", SourceURL: "u"}))
	_, err := s.Diff("old", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompareFirstMatchWins(t *testing.T) {
	dup := volume
	dup.Name = "shadowed"
	d := Compare([]ddi.Entry{volume}, []ddi.Entry{volume, dup})
	assert.True(t, d.Empty())
}

func TestReopenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.CreateRun(&Run{ID: "persisted", SourceURL: "u"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.GetRun("persisted")
	assert.NoError(t, err)
}

func TestIncompatibleVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec(`UPDATE meta SET value = '9.0' WHERE key = 'version'`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrIncompatible)
}
