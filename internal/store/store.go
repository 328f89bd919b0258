// Package store keeps an optional SQLite history of run aggregates, so
// repeated reads on the same hashtag can be compared over time. Only
// derived numbers are archived; the per-post dataset lives solely in the
// exported CSV.
package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tagpulse/internal/report"
)

// Store handles all database operations.
type Store struct {
	db *sql.DB
}

// Run is one archived run summary.
type Run struct {
	ID        int64
	Hashtag   string
	Collected int
	Positive  int
	Negative  int
	Neutral   int
	Skew      string
	Themes    []string
	Summary   string
	CSVPath   string
	RanAt     time.Time
}

// New opens (and if needed creates) the run archive at dbPath.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashtag TEXT NOT NULL,
		collected INTEGER NOT NULL,
		positive INTEGER NOT NULL,
		negative INTEGER NOT NULL,
		neutral INTEGER NOT NULL,
		skew TEXT NOT NULL,
		themes TEXT,
		summary TEXT NOT NULL,
		csv_path TEXT,
		ran_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_hashtag ON runs(hashtag);
	CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun archives the aggregates of one completed run and returns the
// new row's ID.
func (s *Store) RecordRun(hashtag string, collected int, rep report.Report, csvPath string, ranAt time.Time) (int64, error) {
	themesJSON, _ := json.Marshal(rep.Themes)

	res, err := s.db.Exec(`
		INSERT INTO runs (hashtag, collected, positive, negative, neutral,
			skew, themes, summary, csv_path, ran_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, hashtag, collected, rep.Counts.Positive, rep.Counts.Negative, rep.Counts.Neutral,
		rep.Skew, string(themesJSON), rep.Summary, csvPath, ranAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecentRuns returns up to limit archived runs for a hashtag, newest first.
func (s *Store) RecentRuns(hashtag string, limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, hashtag, collected, positive, negative, neutral,
			skew, themes, summary, csv_path, ran_at
		FROM runs
		WHERE hashtag = ?
		ORDER BY ran_at DESC
		LIMIT ?
	`, hashtag, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var themesJSON sql.NullString
		var csvPath sql.NullString

		err := rows.Scan(&r.ID, &r.Hashtag, &r.Collected, &r.Positive, &r.Negative,
			&r.Neutral, &r.Skew, &themesJSON, &r.Summary, &csvPath, &r.RanAt)
		if err != nil {
			return nil, err
		}

		if themesJSON.Valid {
			json.Unmarshal([]byte(themesJSON.String), &r.Themes)
		}
		r.CSVPath = csvPath.String

		runs = append(runs, r)
	}
	return runs, rows.Err()
}
