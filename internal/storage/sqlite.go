// Package storage provides SQLite-based persistence for session recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkovalev/tui-runner/internal/replay"
)

// Store manages the SQLite database connection for recording persistence.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			events TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
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

// SaveRecording persists a sealed recording.
// Returns the ID of the inserted record.
func (s *Store) SaveRecording(rec replay.Recording) (int64, error) {
	events, err := json.Marshal(rec.Events)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode events: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO recordings (seed, tick_rate, events, score, frames) VALUES (?, ?, ?, ?, ?)",
		rec.Seed, rec.TickRate, string(events), rec.Score, rec.Frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recordings retrieves the most recent recordings, newest first.
func (s *Store) Recordings(limit int) ([]replay.Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, tick_rate, events, score, frames, created_at
		 FROM recordings
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var recordings []replay.Recording
	for rows.Next() {
		rec, err := scanRecording(rows.Scan)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recordings, nil
}

// RecordingByID retrieves a single recording.
// Returns nil if no recording with the given ID exists.
func (s *Store) RecordingByID(id int64) (*replay.Recording, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, tick_rate, events, score, frames, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	)

	rec, err := scanRecording(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteRecording removes a recording by ID.
func (s *Store) DeleteRecording(id int64) error {
	_, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	return nil
}

// scanRecording reads one recordings row via the given Scan function.
func scanRecording(scan func(...any) error) (replay.Recording, error) {
	var rec replay.Recording
	var events string
	var createdAt any

	if err := scan(&rec.ID, &rec.Seed, &rec.TickRate, &events, &rec.Score, &rec.Frames, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return rec, err
		}
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if err := json.Unmarshal([]byte(events), &rec.Events); err != nil {
		return rec, fmt.Errorf("storage: cannot decode events: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
