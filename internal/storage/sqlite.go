// Package storage provides the SQLite-backed run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal records one row per finished run. With MemoryDSN the journal
// lives only as long as the process, which is how the CLI opens it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite database connection for the run journal.
// It is safe for concurrent use; SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// Run is one finished journey.
type Run struct {
	ID        string
	Player    string
	GameID    string
	Score     int
	Level     int // Level reached; exceeds the level count for completed journeys
	Explored  int // Planets the camera crossed over the whole run
	Outcome   string
	Ticks     uint64
	CreatedAt time.Time
}

// RunStats contains aggregated statistics over the journal of one game.
type RunStats struct {
	GameID      string
	Runs        int
	BestScore   int
	AvgScore    float64
	MaxExplored int
	Completed   int // Runs that ended with the given outcome
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database. dsn is either MemoryDSN or a file
// path; parent directories of a file path are created and ~ is expanded.
func Open(dsn string) (*Store, error) {
	memory := dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")

	if !memory {
		if strings.HasPrefix(dsn, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}

		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every new connection to :memory: is a fresh empty database.
		db.SetMaxOpenConns(1)
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			explored INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run and returns its ID. A missing ID is
// generated and a zero CreatedAt is set to now.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.GameID == "" {
		return "", errors.New("storage: run without game id")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, game_id, score, level, explored, outcome, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Player, run.GameID, run.Score, run.Level, run.Explored,
		run.Outcome, int64(run.Ticks), run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best N runs of a game, highest score first. Ties
// keep insertion order.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, game_id, score, level, explored, outcome, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns retrieves the latest N runs of a player, newest first.
func (s *Store) RecentRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, player, game_id, score, level, explored, outcome, ticks, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY rowid DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.GameID, &r.Score, &r.Level,
			&r.Explored, &r.Outcome, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates the journal of a game. completedOutcome names the outcome
// counted in RunStats.Completed.
func (s *Store) Stats(gameID, completedOutcome string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(explored), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		completedOutcome, gameID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.MaxExplored, &stats.Completed, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05.000000"

// parseTime handles both time.Time and the string forms the driver returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
