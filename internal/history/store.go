// Package history records finished episodes so the CLI can list them later.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Komalshar25/NeuroVerse/internal/game"
)

// Episode is the persisted summary of one run.
type Episode struct {
	ID         string    `json:"id"`
	Seed       int64     `json:"seed"`
	Ticks      int       `json:"ticks"`
	Score      int       `json:"score"`
	Health     float64   `json:"health"`
	FoodEaten  int       `json:"food_eaten"`
	HazardHits int       `json:"hazard_hits"`
	GameOver   bool      `json:"game_over"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// FromSummary assigns a fresh id to a session summary.
func FromSummary(s game.Summary) Episode {
	return Episode{
		ID:         uuid.NewString(),
		Seed:       s.Seed,
		Ticks:      s.Ticks,
		Score:      s.Score,
		Health:     s.Health,
		FoodEaten:  s.FoodEaten,
		HazardHits: s.HazardHits,
		GameOver:   s.GameOver,
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
	}
}

// Store persists episodes. Implementations are safe for concurrent use.
type Store interface {
	Init(ctx context.Context) error
	SaveEpisode(ctx context.Context, ep Episode) error
	GetEpisode(ctx context.Context, id string) (Episode, bool, error)
	// ListEpisodes returns the most recently ended episodes first. A
	// non-positive limit returns all of them.
	ListEpisodes(ctx context.Context, limit int) ([]Episode, error)
	Close() error
}
