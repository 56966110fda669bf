// Package storage provides SQLite-based persistence for runs and settings.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Setting keys shared with the game.
const (
	KeyHighScore = "highScore"
	KeyMuted     = "gameMuted"
)

// RunEntry represents a single finished run in the database.
type RunEntry struct {
	ID         int64
	RunID      string
	GameID     string
	Difficulty string
	Score      int
	Distance   float64
	CreatedAt  time.Time
}

// Store handles persistence of runs and key/value settings.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Creates parent directories if they don't exist.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home dir: %w", err)
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
		return nil, err
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(game_id, distance DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("storage: migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Setting returns the raw value stored under key.
// The boolean is false when the key has never been written.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting writes value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// HighScoreKey returns the settings key holding the best distance of gameID.
// The primary game keeps the bare key so existing saves carry over.
func HighScoreKey(gameID string) string {
	if gameID == "" || gameID == "runner" {
		return KeyHighScore
	}
	return KeyHighScore + "." + gameID
}

// HighScore returns the best distance recorded for gameID.
// Missing, malformed or negative values read as 0.
func (s *Store) HighScore(gameID string) (float64, error) {
	raw, ok, err := s.Setting(HighScoreKey(gameID))
	if err != nil || !ok {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || v != v {
		return 0, nil
	}
	return v, nil
}

// SaveHighScore stores distance, with one decimal place, as the best for
// gameID. The write only lands when it beats the stored value, so sessions
// sharing a database cannot lower each other's record. Malformed stored
// text casts to 0 and is replaced.
func (s *Store) SaveHighScore(gameID string, distance float64) error {
	key := HighScoreKey(gameID)
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value
		 WHERE CAST(settings.value AS REAL) < CAST(excluded.value AS REAL)`,
		key, strconv.FormatFloat(distance, 'f', 1, 64),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// Muted reports the persisted audio mute flag.
func (s *Store) Muted() (bool, error) {
	raw, _, err := s.Setting(KeyMuted)
	if err != nil {
		return false, err
	}
	return raw == "1", nil
}

// SetMuted persists the audio mute flag.
func (s *Store) SetMuted(muted bool) error {
	value := "0"
	if muted {
		value = "1"
	}
	return s.SetSetting(KeyMuted, value)
}

// SaveRun records a finished run and returns its generated run ID.
func (s *Store) SaveRun(gameID, difficulty string, score int, distance float64) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, difficulty, score, distance) VALUES (?, ?, ?, ?, ?)`,
		runID, gameID, difficulty, score, distance,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopRuns returns the longest runs for a game, ordered by distance descending.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, difficulty, score, distance, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY distance DESC, score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns returns every run of a game, newest first.
func (s *Store) AllRuns(gameID string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, difficulty, score, distance, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ClearRuns deletes all runs of a game. Settings are left alone.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Difficulty, &r.Score, &r.Distance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse("2006-01-02 15:04:05", t)
		return parsed
	}
	return time.Time{}
}

// GameStats contains aggregate run statistics for a game.
type GameStats struct {
	GameID        string
	RunsCount     int
	BestDistance  float64
	BestScore     int
	AvgDistance   float64
	TotalDistance float64
	LastPlayed    time.Time
}

// GetGameStats returns aggregate statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(distance), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(distance), 0), COALESCE(SUM(distance), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.BestDistance, &stats.BestScore,
		&stats.AvgDistance, &stats.TotalDistance, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)

	return stats, nil
}

// GetAllGamesStats returns statistics for every game that has runs.
func (s *Store) GetAllGamesStats() ([]GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM runs ORDER BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get games list: %w", err)
	}

	defer rows.Close()

	var gameIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan game id: %w", err)
		}
		gameIDs = append(gameIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot list games: %w", err)
	}
	rows.Close() // GetGameStats below needs the connection

	result := make([]GameStats, 0, len(gameIDs))
	for _, id := range gameIDs {
		stats, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *stats)
	}

	return result, nil
}
