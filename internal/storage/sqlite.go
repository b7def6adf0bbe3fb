// Package storage provides SQLite-based persistence for demo session records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionRecord summarizes one finished demo run.
type SessionRecord struct {
	ID              int64
	DemoID          string
	Frames          int
	PeakEntities    int
	SharedResources int // flyweight cache size when the session ended
	Duration        time.Duration
	CreatedAt       time.Time
}

// DemoStats contains aggregated statistics for a demo.
type DemoStats struct {
	DemoID       string
	Sessions     int
	TotalFrames  int64
	PeakEntities int
	MaxShared    int
	AvgDuration  time.Duration
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			peak_entities INTEGER NOT NULL DEFAULT 0,
			shared_resources INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_demo_id ON sessions(demo_id);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	if rec.DemoID == "" {
		return 0, errors.New("storage: session has no demo id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (demo_id, frames, peak_entities, shared_resources, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.DemoID, rec.Frames, rec.PeakEntities, rec.SharedResources, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest sessions, newest first.
// An empty demoID returns sessions of every demo.
func (s *Store) RecentSessions(demoID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, frames, peak_entities, shared_resources, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.DemoID, &r.Frames, &r.PeakEntities, &r.SharedResources, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DemoStats retrieves aggregated statistics for a specific demo.
// A demo with no sessions yields zero stats, not an error.
func (s *Store) DemoStats(demoID string) (*DemoStats, error) {
	stats := &DemoStats{DemoID: demoID}

	var avgMS float64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(MAX(peak_entities), 0),
		        COALESCE(MAX(shared_resources), 0), COALESCE(AVG(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE demo_id = ?`,
		demoID,
	).Scan(&stats.Sessions, &stats.TotalFrames, &stats.PeakEntities, &stats.MaxShared, &avgMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}
	stats.AvgDuration = time.Duration(avgMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllDemoStats retrieves statistics for every demo that has been played.
func (s *Store) AllDemoStats() (map[string]*DemoStats, error) {
	rows, err := s.db.Query(
		`SELECT demo_id, COUNT(*), SUM(frames), MAX(peak_entities), MAX(shared_resources),
		        AVG(duration_ms), MAX(created_at)
		 FROM sessions
		 GROUP BY demo_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all demo stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DemoStats)
	for rows.Next() {
		var st DemoStats
		var avgMS float64
		var lastPlayed any
		if err := rows.Scan(&st.DemoID, &st.Sessions, &st.TotalFrames, &st.PeakEntities, &st.MaxShared, &avgMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.AvgDuration = time.Duration(avgMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.DemoID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes all sessions for the given demo.
// An empty demoID clears every demo.
func (s *Store) ClearSessions(demoID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR demo_id = ?", demoID, demoID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
