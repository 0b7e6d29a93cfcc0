// internal/history/history.go
//
// SQLite-backed record of finished solving sessions.
// Responsibilities:
//   - Open the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Bootstrap the schema on first open.
//   - Insert one row per finished session; list recent sessions.
//
// History is best-effort from the bot's point of view: a failed write is
// logged, never fatal to a solve that already finished.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	guesses     INTEGER NOT NULL,
	final_guess TEXT NOT NULL DEFAULT '',
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solves_finished_at ON solves(finished_at);
`

// Open opens (and creates if missing) the history database at dsn and
// ensures the schema exists.
func Open(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/history.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// Row is one finished solving session.
type Row struct {
	SessionID  string `json:"sessionId"`
	Outcome    string `json:"outcome"`
	Guesses    int    `json:"guesses"`
	FinalGuess string `json:"finalGuess"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt"`
}

// Store persists solve results.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts one finished session.
func (s *Store) Record(ctx context.Context, r Row) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solves(session_id, outcome, guesses, final_guess, started_at, finished_at)
		 VALUES(?,?,?,?,?,?)`,
		r.SessionID, r.Outcome, r.Guesses, r.FinalGuess, r.StartedAt, r.FinishedAt,
	)
	return err
}

// Recent returns up to limit sessions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, outcome, guesses, final_guess, started_at, finished_at
		 FROM solves
		 ORDER BY finished_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.SessionID, &r.Outcome, &r.Guesses, &r.FinalGuess, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
