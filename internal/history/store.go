// Package history persists trigger events to a small sqlite database next
// to the config file. The log is display-only: write failures are dropped
// and a missing store degrades to a no-op.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS triggers (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	at      INTEGER NOT NULL,
	current REAL NOT NULL,
	max     REAL NOT NULL,
	hp_pct  REAL NOT NULL
);
`

// Entry is one recorded potion trigger.
type Entry struct {
	At      time.Time
	Current float64
	Max     float64
	HPPct   float64
}

// Store is an append-only trigger log.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// Single writer; keep operations serialized.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=2000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one trigger.
func (s *Store) Append(e Entry) error {
	_, err := s.db.Exec(
		"INSERT INTO triggers (at, current, max, hp_pct) VALUES (?, ?, ?, ?)",
		e.At.UnixMilli(), e.Current, e.Max, e.HPPct,
	)
	if err != nil {
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT at, current, max, hp_pct FROM triggers ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&at, &e.Current, &e.Max, &e.HPPct); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.At = time.UnixMilli(at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecordTrigger implements the monitor's Recorder. Errors are dropped;
// the polling loop never stalls on the log.
func (s *Store) RecordTrigger(at time.Time, current, max, hpPct float64) {
	if s == nil {
		return
	}
	_ = s.Append(Entry{At: at, Current: current, Max: max, HPPct: hpPct})
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
