// Package history records executed requests in a local SQLite log.
package history

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS requests (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	method      TEXT NOT NULL,
	url         TEXT NOT NULL,
	status_code INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	executed_at TEXT NOT NULL
);`

// Entry is one logged request.
type Entry struct {
	ID         int64
	Method     string
	URL        string
	StatusCode int
	Duration   time.Duration
	ExecutedAt time.Time
}

// Recorder appends to and reads from the request log.
type Recorder struct {
	db *sql.DB
}

// DefaultPath derives the history database location from the data file
// path: coman.json -> coman_history.db.
func DefaultPath(storePath string) string {
	return strings.TrimSuffix(storePath, ".json") + "_history.db"
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db}, nil
}

func (r *Recorder) Close() error { return r.db.Close() }

// Record appends one entry. ExecutedAt defaults to now when zero.
func (r *Recorder) Record(ctx context.Context, e Entry) error {
	at := e.ExecutedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO requests (method, url, status_code, duration_ms, executed_at) VALUES (?, ?, ?, ?, ?)`,
		e.Method, e.URL, e.StatusCode, e.Duration.Milliseconds(), at.UTC().Format(time.RFC3339))
	return err
}

// List returns the most recent entries, newest first.
func (r *Recorder) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, method, url, status_code, duration_ms, executed_at FROM requests ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		var at string
		if err := rows.Scan(&e.ID, &e.Method, &e.URL, &e.StatusCode, &durationMs, &at); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.ExecutedAt, _ = time.Parse(time.RFC3339, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
