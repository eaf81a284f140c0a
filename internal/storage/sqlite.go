// Package storage provides SQLite-based persistence for the runner leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is the leaderboard size used when a caller passes a non-positive limit.
const DefaultLimit = 10

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one player's best score.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Stats contains aggregated leaderboard statistics.
type Stats struct {
	Players    int
	HighScore  int
	AvgScore   float64
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// A single writer keeps concurrent submissions from tripping SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS leaderboard_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_player ON leaderboard_scores(player_name);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard_scores(score DESC, created_at ASC);
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

// SubmitBest records score for name only if it beats the player's stored best.
// An existing row is raised in place, keeping its original timestamp.
// It reports whether anything was written.
func (s *Store) SubmitBest(name string, score int) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	var best int
	err = tx.QueryRow(
		`SELECT id, score FROM leaderboard_scores
		 WHERE player_name = ?
		 ORDER BY score DESC
		 LIMIT 1`,
		name,
	).Scan(&id, &best)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.Exec(
			"INSERT INTO leaderboard_scores (player_name, score) VALUES (?, ?)",
			name, score,
		); err != nil {
			return false, fmt.Errorf("storage: cannot insert score: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("storage: cannot query best score: %w", err)
	case score <= best:
		return false, nil
	default:
		if _, err := tx.Exec(
			"UPDATE leaderboard_scores SET score = ? WHERE id = ?",
			score, id,
		); err != nil {
			return false, fmt.Errorf("storage: cannot update score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return true, nil
}

// TopScores returns up to limit entries ranked by score, earliest first on ties.
// Names are compared case-insensitively after trimming, and only the best
// entry of each player is listed.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, score, created_at
		 FROM leaderboard_scores
		 ORDER BY score DESC, created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool, limit)
	entries := make([]ScoreEntry, 0, limit)
	for rows.Next() && len(entries) < limit {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the stored best for name, or 0 if the player has none.
func (s *Store) BestScore(name string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM leaderboard_scores WHERE player_name = ?",
		name,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated statistics over every stored entry.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT LOWER(TRIM(player_name))), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM leaderboard_scores`,
	).Scan(&stats.Players, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearScores deletes every leaderboard entry.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM leaderboard_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the SQLite text form of DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
