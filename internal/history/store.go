// Package history records completed timer runs in a local SQLite database so
// past logouts can be reviewed after the fact.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration
)

// Entry is one completed countdown.
type Entry struct {
	ID         int64
	StartedAt  time.Time
	Duration   time.Duration
	Action     string
	Outcome    string
	Detail     string
	FinishedAt time.Time
}

// Store keeps run history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at  TEXT NOT NULL,
			duration_s  INTEGER NOT NULL,
			action      TEXT NOT NULL,
			outcome     TEXT NOT NULL,
			detail      TEXT NOT NULL DEFAULT '',
			finished_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`)
	if err != nil {
		return fmt.Errorf("creating history tables: %w", err)
	}
	return nil
}

// Append records e, returning its assigned ID.
func (s *Store) Append(e Entry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO runs (started_at, duration_s, action, outcome, detail, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.StartedAt.Format(time.RFC3339Nano),
		int64(e.Duration/time.Second),
		e.Action, e.Outcome, e.Detail,
		e.FinishedAt.Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, duration_s, action, outcome, detail, finished_at
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startedStr, finishedStr string
		var secs int64
		if err := rows.Scan(&e.ID, &startedStr, &secs, &e.Action, &e.Outcome, &e.Detail, &finishedStr); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		e.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr)
		e.Duration = time.Duration(secs) * time.Second
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded runs.
func (s *Store) Count() int64 {
	var count int64
	s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count)
	return count
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
