// Package storage persists the previous score and a round history.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundEntry is one finished round.
type RoundEntry struct {
	ID         int64
	Player     string
	Score      int
	Difficulty string
	CreatedAt  time.Time
}

// PlayerStats aggregates a player's rounds.
type PlayerStats struct {
	Player     string
	Rounds     int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

const prevScoreKey = "prev_score"

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'medium',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player, created_at DESC);

		CREATE TABLE IF NOT EXISTS prefs (
			player TEXT NOT NULL,
			key TEXT NOT NULL,
			value INTEGER NOT NULL,
			PRIMARY KEY (player, key)
		);
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

// PrevScore returns the player's last final score, or 0 if none.
func (s *Store) PrevScore(player string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT value FROM prefs WHERE player = ? AND key = ?",
		player, prevScoreKey,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read previous score: %w", err)
	}
	return score, nil
}

// SetPrevScore overwrites the player's previous score.
func (s *Store) SetPrevScore(player string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (player, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value`,
		player, prevScoreKey, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save previous score: %w", err)
	}
	return nil
}

// FinishRound records a round and overwrites the previous score in one
// transaction.
func (s *Store) FinishRound(player string, score int, difficulty string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO rounds (player, score, difficulty) VALUES (?, ?, ?)",
		player, score, difficulty,
	); err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO prefs (player, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value`,
		player, prevScoreKey, score,
	); err != nil {
		return fmt.Errorf("storage: cannot save previous score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return nil
}

// RecentRounds returns the player's latest rounds, newest first.
// An empty player selects every player.
func (s *Store) RecentRounds(player string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, difficulty, created_at
		 FROM rounds
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics for a player.
func (s *Store) Stats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM rounds WHERE player = ?`,
		player,
	).Scan(&stats.Rounds, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRounds deletes a player's history and previous score.
func (s *Store) ClearRounds(player string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM prefs WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear prefs: %w", err)
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

// PlayerStore scopes a Store to one player. It satisfies the game's score
// store: writing the previous score also appends the round to the history.
type PlayerStore struct {
	store      *Store
	player     string
	difficulty string
}

// ForPlayer returns a view of the store for one player.
func (s *Store) ForPlayer(player, difficulty string) *PlayerStore {
	return &PlayerStore{store: s, player: player, difficulty: difficulty}
}

// PrevScore returns the player's previous score.
func (p *PlayerStore) PrevScore() (int, error) {
	return p.store.PrevScore(p.player)
}

// SetPrevScore records a finished round for the player.
func (p *PlayerStore) SetPrevScore(score int) error {
	return p.store.FinishRound(p.player, score, p.difficulty)
}
