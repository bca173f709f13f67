// Package storage provides SQLite-based persistence for level progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// ProgressEntry tracks how far a player has come on a single level.
// It deliberately carries no scores or stars, only completion state.
type ProgressEntry struct {
	LevelID    string
	Attempts   int
	Completed  bool
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			level_id TEXT PRIMARY KEY,
			attempts INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			last_played DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_progress_completed ON progress(completed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordAttempt increments the attempt counter for a level.
// Creates the progress row on first play.
func (s *Store) RecordAttempt(levelID string) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (level_id, attempts, last_played)
		 VALUES (?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id) DO UPDATE SET
		   attempts = attempts + 1,
		   last_played = CURRENT_TIMESTAMP`,
		levelID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record attempt: %w", err)
	}
	return nil
}

// MarkCompleted flags a level as completed. Completion is sticky; a
// later failed attempt never unmarks it.
func (s *Store) MarkCompleted(levelID string) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (level_id, attempts, completed, last_played)
		 VALUES (?, 0, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id) DO UPDATE SET
		   completed = 1,
		   last_played = CURRENT_TIMESTAMP`,
		levelID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark completed: %w", err)
	}
	return nil
}

// Progress returns the progress entry for a level, or nil if the level
// has never been played.
func (s *Store) Progress(levelID string) (*ProgressEntry, error) {
	var e ProgressEntry
	var completed int
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT level_id, attempts, completed, last_played
		 FROM progress
		 WHERE level_id = ?`,
		levelID,
	).Scan(&e.LevelID, &e.Attempts, &completed, &lastPlayed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	e.Completed = completed != 0
	e.LastPlayed = parseTimestamp(lastPlayed)
	return &e, nil
}

// AllProgress returns progress for every played level, ordered by level ID.
func (s *Store) AllProgress() ([]ProgressEntry, error) {
	rows, err := s.db.Query(
		`SELECT level_id, attempts, completed, last_played
		 FROM progress
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var entries []ProgressEntry
	for rows.Next() {
		var e ProgressEntry
		var completed int
		var lastPlayed any
		if err := rows.Scan(&e.LevelID, &e.Attempts, &completed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0
		e.LastPlayed = parseTimestamp(lastPlayed)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CompletedIDs returns the IDs of all completed levels.
func (s *Store) CompletedIDs() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT level_id FROM progress WHERE completed = 1`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// ClearProgress deletes the progress row for a level.
func (s *Store) ClearProgress(levelID string) error {
	_, err := s.db.Exec("DELETE FROM progress WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a
// SQLite datetime string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
