package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	// A single connection serialises writers; sqlite rejects concurrent ones.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveEpisode(ctx context.Context, ep Episode) error {
	if ep.ID == "" {
		return errors.New("episode id is required")
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO episodes (id, seed, ticks, score, health, food_eaten, hazard_hits, game_over, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed,
			ticks = excluded.ticks,
			score = excluded.score,
			health = excluded.health,
			food_eaten = excluded.food_eaten,
			hazard_hits = excluded.hazard_hits,
			game_over = excluded.game_over,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at
	`, ep.ID, ep.Seed, ep.Ticks, ep.Score, ep.Health, ep.FoodEaten, ep.HazardHits,
		boolToInt(ep.GameOver), ep.StartedAt.UnixNano(), ep.EndedAt.UnixNano())
	return err
}

func (s *SQLiteStore) GetEpisode(ctx context.Context, id string) (Episode, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Episode{}, false, err
	}

	row := db.QueryRowContext(ctx, selectEpisodes+` WHERE id = ?`, id)
	ep, err := scanEpisode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Episode{}, false, nil
		}
		return Episode{}, false, fmt.Errorf("get episode %s: %w", id, err)
	}
	return ep, true, nil
}

func (s *SQLiteStore) ListEpisodes(ctx context.Context, limit int) ([]Episode, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx, selectEpisodes+` ORDER BY ended_at DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errNotInitialized
	}
	return s.db, nil
}

const selectEpisodes = `SELECT id, seed, ticks, score, health, food_eaten, hazard_hits, game_over, started_at, ended_at FROM episodes`

type scanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row scanner) (Episode, error) {
	var (
		ep             Episode
		gameOver       int
		started, ended int64
	)
	if err := row.Scan(&ep.ID, &ep.Seed, &ep.Ticks, &ep.Score, &ep.Health, &ep.FoodEaten, &ep.HazardHits, &gameOver, &started, &ended); err != nil {
		return Episode{}, err
	}
	ep.GameOver = gameOver != 0
	ep.StartedAt = time.Unix(0, started).UTC()
	ep.EndedAt = time.Unix(0, ended).UTC()
	return ep, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			health REAL NOT NULL,
			food_eaten INTEGER NOT NULL,
			hazard_hits INTEGER NOT NULL,
			game_over INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS episodes_ended_at ON episodes (ended_at);
	`)
	return err
}
