// Package store keeps a SQLite history of generator runs and the tables
// they produced, so successive exports can be compared.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/version"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// ErrIncompatible is returned when the database was written by an
// incompatible tool version.
var ErrIncompatible = errors.New("incompatible history database")

// Store provides SQLite persistence for runs and their entries.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Open opens or creates the database at path. Use ":memory:" for an
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// Every connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec(`PRAGMA journal_mode = WAL;`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := s.checkVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_url TEXT NOT NULL,
		fingerprint TEXT,
		tool_version TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'running',
		started_at DATETIME,
		completed_at DATETIME,
		entry_count INTEGER DEFAULT 0,
		diagnostic_count INTEGER DEFAULT 0,
		error_message TEXT
	);

	CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		ddi INTEGER NOT NULL,
		name TEXT NOT NULL,
		unit_symbol TEXT NOT NULL,
		unit_name TEXT NOT NULL,
		resolution REAL NOT NULL,
		range_min REAL NOT NULL,
		range_max REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_run_ddi ON entries(run_id, ddi);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT OR IGNORE INTO meta (key, value) VALUES ('version', ?)`, version.Current)
	return err
}

func (s *Store) checkVersion() error {
	var stored string
	if err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&stored); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	have, err := version.Parse(stored)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	want, _ := version.Parse(version.Current)
	if !want.Compatible(have) {
		return fmt.Errorf("%w: written by %s, this is %s", ErrIncompatible, have, want)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRun records the start of a run. StartedAt and ToolVersion are
// filled in when unset.
func (s *Store) CreateRun(run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.StartedAt == nil {
		now := s.now()
		run.StartedAt = &now
	}
	if run.ToolVersion == "" {
		run.ToolVersion = version.Current
	}
	if run.Status == "" {
		run.Status = RunStatusRunning
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (id, source_url, fingerprint, tool_version, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.Fingerprint, run.ToolVersion, run.Status, run.StartedAt)
	return err
}

// SetFingerprint stores the export digest once it is known.
func (s *Store) SetFingerprint(id, fingerprint string) error {
	return s.update(`UPDATE runs SET fingerprint = ? WHERE id = ?`, fingerprint, id)
}

// CompleteRun marks a run as completed.
func (s *Store) CompleteRun(id string, entryCount, diagnosticCount int) error {
	return s.update(`
		UPDATE runs
		SET status = ?, completed_at = ?, entry_count = ?, diagnostic_count = ?
		WHERE id = ?
	`, RunStatusCompleted, s.now(), entryCount, diagnosticCount, id)
}

// FailRun marks a run as failed with the given error.
func (s *Store) FailRun(id string, runErr error) error {
	msg := "unknown error"
	if runErr != nil {
		msg = runErr.Error()
	}
	return s.update(`
		UPDATE runs SET status = ?, completed_at = ?, error_message = ? WHERE id = ?
	`, RunStatusFailed, s.now(), msg, id)
}

func (s *Store) update(query string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveEntries stores the table of a run in encounter order, replacing any
// entries saved before.
func (s *Store) SaveEntries(runID string, entries []ddi.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries WHERE run_id = ?`, runID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO entries (run_id, position, ddi, name, unit_symbol, unit_name, resolution, range_min, range_max)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(runID, i, e.DDI, e.Name, e.UnitSymbol, e.UnitName,
			e.Resolution, e.DisplayRange.Min, e.DisplayRange.Max); err != nil {
			return fmt.Errorf("entry %d (DDI %d): %w", i, e.DDI, err)
		}
	}
	return tx.Commit()
}

const runColumns = `id, source_url, fingerprint, tool_version, status, started_at, completed_at,
		       entry_count, diagnostic_count, error_message`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var startedAt, completedAt sql.NullTime
	var fingerprint, errMsg sql.NullString

	if err := row.Scan(
		&run.ID, &run.SourceURL, &fingerprint, &run.ToolVersion, &run.Status,
		&startedAt, &completedAt,
		&run.EntryCount, &run.DiagnosticCount, &errMsg,
	); err != nil {
		return nil, err
	}

	run.Fingerprint = fingerprint.String
	run.ErrorMessage = errMsg.String
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	if run.StartedAt != nil && run.CompletedAt != nil {
		run.Duration = run.CompletedAt.Sub(*run.StartedAt).Round(time.Millisecond).String()
	}
	return &run, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

// LatestCompleted returns the most recent completed run, excluding the
// given ID. It returns ErrNotFound when there is none.
func (s *Store) LatestCompleted(excludeID string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := scanRun(s.db.QueryRow(`
		SELECT `+runColumns+` FROM runs
		WHERE status = ? AND id != ?
		ORDER BY started_at DESC
		LIMIT 1
	`, RunStatusCompleted, excludeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return run, err
}

// ListRuns retrieves runs, most recent first. A non-positive limit means 100.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`
		SELECT `+runColumns+` FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Entries returns the table saved for a run in encounter order.
func (s *Store) Entries(runID string) ([]ddi.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT ddi, name, unit_symbol, unit_name, resolution, range_min, range_max
		FROM entries WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ddi.Entry
	for rows.Next() {
		var e ddi.Entry
		if err := rows.Scan(&e.DDI, &e.Name, &e.UnitSymbol, &e.UnitName,
			&e.Resolution, &e.DisplayRange.Min, &e.DisplayRange.Max); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteRun deletes a run and its entries.
func (s *Store) DeleteRun(id string) error {
	return s.update(`DELETE FROM runs WHERE id = ?`, id)
}

// Diff compares the tables of two runs. Identifiers are matched with
// lookup semantics: the first entry for an identifier is the one compared.
func (s *Store) Diff(oldRunID, newRunID string) (*Diff, error) {
	for _, id := range []string{oldRunID, newRunID} {
		if _, err := s.GetRun(id); err != nil {
			return nil, err
		}
	}
	oldEntries, err := s.Entries(oldRunID)
	if err != nil {
		return nil, err
	}
	newEntries, err := s.Entries(newRunID)
	if err != nil {
		return nil, err
	}
	d := Compare(oldEntries, newEntries)
	d.OldRunID, d.NewRunID = oldRunID, newRunID
	return d, nil
}

// Compare diffs two tables.
func Compare(oldEntries, newEntries []ddi.Entry) *Diff {
	oldDict := ddi.NewDictionary(oldEntries)
	newDict := ddi.NewDictionary(newEntries)
	d := &Diff{}

	for _, id := range uniqueIDs(newEntries) {
		n := newDict.Lookup(id)
		if !oldDict.Contains(id) {
			d.Added = append(d.Added, n)
			continue
		}
		o := oldDict.Lookup(id)
		if fields := changedFields(o, n); len(fields) > 0 {
			d.Changed = append(d.Changed, Change{DDI: id, Old: o, New: n, Fields: fields})
		}
	}
	for _, id := range uniqueIDs(oldEntries) {
		if !newDict.Contains(id) {
			d.Removed = append(d.Removed, oldDict.Lookup(id))
		}
	}
	return d
}

func uniqueIDs(entries []ddi.Entry) []uint16 {
	ids := make([]uint16, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.DDI)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func changedFields(o, n ddi.Entry) []string {
	var fields []string
	if o.Name != n.Name {
		fields = append(fields, "name")
	}
	if o.UnitSymbol != n.UnitSymbol {
		fields = append(fields, "unit_symbol")
	}
	if o.UnitName != n.UnitName {
		fields = append(fields, "unit_name")
	}
	if o.Resolution != n.Resolution {
		fields = append(fields, "resolution")
	}
	if o.DisplayRange != n.DisplayRange {
		fields = append(fields, "display_range")
	}
	return fields
}
