// Package storage persists the high-score table. JSONStore writes the plain
// JSON file the game uses by default; SQLiteStore keeps the table plus a
// history of every finished game in a SQLite database, using the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/highscore"
)

// SQLiteStore manages the SQLite database connection for score persistence.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// GameStats contains aggregated statistics over every recorded game.
type GameStats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	MaxLevel   int
	LastPlayed time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

	store := &SQLiteStore{db: db, logger: orDiscard(logger)}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			position INTEGER PRIMARY KEY,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			date TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the high-score table ordered by position.
func (s *SQLiteStore) Load() ([]highscore.Entry, error) {
	rows, err := s.db.Query(`SELECT score, level, date FROM high_scores ORDER BY position`)
	if err != nil {
		return []highscore.Entry{}, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries := []highscore.Entry{}
	for rows.Next() {
		var e highscore.Entry
		if err := rows.Scan(&e.Score, &e.Level, &e.Date); err != nil {
			return []highscore.Entry{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return []highscore.Entry{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return highscore.Normalize(entries), nil
}

// Save replaces the high-score table in a single transaction.
func (s *SQLiteStore) Save(entries []highscore.Entry) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			//nolint:errcheck // Rollback error is secondary to the original one
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	for i, e := range highscore.Normalize(append([]highscore.Entry(nil), entries...)) {
		if _, err = tx.Exec(
			`INSERT INTO high_scores (position, score, level, date) VALUES (?, ?, ?, ?)`,
			i+1, e.Score, e.Level, e.Date,
		); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	s.logger.Debug("high scores saved", "entries", len(entries))
	return nil
}

// Record appends a finished game to the history, whether or not it made
// the high-score table.
func (s *SQLiteStore) Record(e highscore.Entry) error {
	_, err := s.db.Exec(
		"INSERT INTO games (score, level) VALUES (?, ?)",
		e.Score, e.Level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over the game history.
func (s *SQLiteStore) Stats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(level), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.MaxLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT played_at FROM games ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ highscore.Store    = (*SQLiteStore)(nil)
	_ highscore.Recorder = (*SQLiteStore)(nil)
)
