// Package history persists benchmark runs and compares them across time to
// surface performance regressions.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store defines the methods for persistent run storage.
type Store interface {
	Close() error
	SaveRun(run Run) (int64, error)
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a history database at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		commit_hash TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		mean_ns INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun records a run and its results, returning the new run ID.
func (s *SQLiteStore) SaveRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	res, err := tx.Exec(`INSERT INTO runs (commit_hash, created_at) VALUES (?, ?)`, run.Commit, ts)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for _, r := range run.Results {
		if _, err := tx.Exec(`INSERT INTO results (run_id, name, mean_ns) VALUES (?, ?, ?)`,
			id, r.Name, r.MeanNs); err != nil {
			return 0, fmt.Errorf("failed to insert result %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadLatest returns the most recent run, or nil if none has been saved.
func (s *SQLiteStore) LoadLatest() (*Run, error) {
	row := s.db.QueryRow(`SELECT id, commit_hash, created_at FROM runs ORDER BY id DESC LIMIT 1`)

	var run Run
	if err := row.Scan(&run.ID, &run.Commit, &run.Timestamp); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}

	results, err := s.loadResults(run.ID)
	if err != nil {
		return nil, err
	}
	run.Results = results
	return &run, nil
}

// LoadAll returns every saved run in chronological order.
func (s *SQLiteStore) LoadAll() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, commit_hash, created_at FROM runs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Commit, &run.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		results, err := s.loadResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

func (s *SQLiteStore) loadResults(runID int64) ([]Result, error) {
	rows, err := s.db.Query(`SELECT name, mean_ns FROM results WHERE run_id = ? ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for run %d: %w", runID, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Name, &r.MeanNs); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
