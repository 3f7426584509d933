// Package game wires one world, one agent and a seeded random source into a
// session that drivers advance tick by tick.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Komalshar25/NeuroVerse/internal/agent"
	"github.com/Komalshar25/NeuroVerse/internal/brain"
	"github.com/Komalshar25/NeuroVerse/internal/core"
	"github.com/Komalshar25/NeuroVerse/internal/logging"
	"github.com/Komalshar25/NeuroVerse/internal/world"
)

// Stats counts what happened during the current episode.
type Stats struct {
	FoodEaten   int `json:"food_eaten"`
	HazardHits  int `json:"hazard_hits"`
	Moves       int `json:"moves"`
	ManualMoves int `json:"manual_moves"`
	IdleTicks   int `json:"idle_ticks"`
}

// Summary describes an episode at the moment it was taken.
type Summary struct {
	Seed      int64     `json:"seed"`
	Ticks     int       `json:"ticks"`
	Score     int       `json:"score"`
	Health    float64   `json:"health"`
	GameOver  bool      `json:"game_over"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Stats
}

// Session owns the simulation state for a single agent.
type Session struct {
	cfg   Config
	rng   *core.RNG
	world *world.World
	agent *agent.Agent

	tick      int
	episode   int
	stats     Stats
	last      agent.Outcome
	startedAt time.Time
	display   []uint8

	logger *slog.Logger
	trace  *logging.TraceWriter
	clock  func() time.Time
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger routes session logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTrace writes one record per tick to tw.
func WithTrace(tw *logging.TraceWriter) Option {
	return func(s *Session) { s.trace = tw }
}

// New validates cfg and builds a ready-to-step session.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	activation, err := brain.ActivationByName(cfg.Activation)
	if err != nil {
		return nil, err
	}
	net, err := brain.NewDirectional(brain.WithActivation(activation))
	if err != nil {
		return nil, fmt.Errorf("wire brain: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		rng:    core.NewRNG(cfg.Seed),
		logger: logging.Discard(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.world, err = world.New(cfg.Size, cfg.Spawn(), s.rng, world.WithHazards(cfg.Hazards), world.WithFood(cfg.Food))
	if err != nil {
		return nil, fmt.Errorf("seed world: %w", err)
	}
	s.agent = agent.New(cfg.Spawn(), net, cfg.Agent)
	s.beginEpisode()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "neuroverse" }

// Size reports the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Config returns the configuration in effect.
func (s *Session) Config() Config { return s.cfg }

// World exposes the grid for rendering.
func (s *Session) World() *world.World { return s.world }

// Agent exposes the agent for HUD rendering.
func (s *Session) Agent() *agent.Agent { return s.agent }

// Tick returns the number of steps taken in the current episode.
func (s *Session) Tick() int { return s.tick }

// LastOutcome returns the outcome of the most recent step.
func (s *Session) LastOutcome() agent.Outcome { return s.last }

// AIInterval reports how many driver ticks pass between AI decisions.
func (s *Session) AIInterval() int { return s.cfg.AIInterval }

// Paint overwrites one tile of the grid. The agent's own cell is left alone.
func (s *Session) Paint(x, y int, tile world.Tile) error {
	if (world.Point{X: x, Y: y}) == s.agent.Position() {
		return fmt.Errorf("cell (%d,%d) holds the agent", x, y)
	}
	return s.world.Place(x, y, tile)
}

// Propose queues a manual move for the next step.
func (s *Session) Propose(dx, dy int) { s.agent.ProposeMove(dx, dy) }

// Step advances the session by one tick.
func (s *Session) Step() { s.Advance() }

// Advance advances the session by one tick and returns what the agent did.
// Once the agent is dead it returns a skipped outcome and the tick counter
// stays put.
func (s *Session) Advance() agent.Outcome {
	out := s.agent.Step(s.world)
	if out.Skipped {
		return out
	}
	s.tick++
	s.last = out
	s.record(out)
	return out
}

func (s *Session) record(out agent.Outcome) {
	switch {
	case out.Action == agent.Manual:
		s.stats.ManualMoves++
	case out.Action == agent.Stay:
		s.stats.IdleTicks++
	default:
		s.stats.Moves++
	}

	pos := s.agent.Position()
	switch out.Event {
	case agent.EventFood:
		s.stats.FoodEaten++
		s.logger.Debug("food eaten", "tick", s.tick, "x", pos.X, "y", pos.Y, "health", s.agent.Health())
	case agent.EventHazard:
		s.stats.HazardHits++
		s.logger.Debug("hazard hit", "tick", s.tick, "x", pos.X, "y", pos.Y, "health", s.agent.Health())
	}

	s.logger.Log(context.Background(), logging.LevelTrace, "tick",
		"tick", s.tick,
		"action", out.Action.String(),
		"signal", out.Signal,
		"x", pos.X,
		"y", pos.Y,
		"health", s.agent.Health(),
	)

	if s.trace != nil {
		s.trace.Log(map[string]any{
			"episode": s.episode,
			"tick":    s.tick,
			"x":       pos.X,
			"y":       pos.Y,
			"health":  s.agent.Health(),
			"score":   s.agent.Score(),
			"action":  out.Action.String(),
			"signal":  out.Signal,
			"event":   out.Event.String(),
			"sensors": out.Sensors.Map(),
			"outputs": map[string]float64{
				brain.MoveLeft:  out.Outputs.Left,
				brain.MoveRight: out.Outputs.Right,
				brain.MoveUp:    out.Outputs.Up,
				brain.MoveDown:  out.Outputs.Down,
			},
		})
	}

	if out.Ended {
		s.logger.Info("game over",
			"episode", s.episode,
			"ticks", s.tick,
			"score", s.agent.Score(),
			"food", s.stats.FoodEaten,
			"hazards", s.stats.HazardHits,
		)
	}
}

// Restart reseeds the tiles from the session's random stream and revives the
// agent at the spawn cell.
func (s *Session) Restart() error {
	spawn := s.cfg.Spawn()
	if err := s.agent.ResetState(s.world, spawn.X, spawn.Y); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.beginEpisode()
	return nil
}

// Reset restarts the random stream from seed and then restarts the episode.
func (s *Session) Reset(seed int64) error {
	s.cfg.Seed = seed
	s.rng.Reseed(seed)
	return s.Restart()
}

func (s *Session) beginEpisode() {
	s.episode++
	s.tick = 0
	s.stats = Stats{}
	s.last = agent.Outcome{}
	s.startedAt = s.clock()
	s.logger.Info("episode started",
		"episode", s.episode,
		"seed", s.cfg.Seed,
		"size", s.cfg.Size,
		"hazards", s.world.Count(world.Hazard),
		"food", s.world.Count(world.Food),
	)
}

// Summary reports the current episode.
func (s *Session) Summary() Summary {
	return Summary{
		Seed:      s.cfg.Seed,
		Ticks:     s.tick,
		Score:     s.agent.Score(),
		Health:    s.agent.Health(),
		GameOver:  s.agent.IsGameOver(),
		StartedAt: s.startedAt,
		EndedAt:   s.clock(),
		Stats:     s.stats,
	}
}

// RunEpisode steps s until the agent dies, maxTicks steps were taken, or ctx
// is done. A non-positive maxTicks means no tick limit.
func RunEpisode(ctx context.Context, s *Session, maxTicks int) (Summary, error) {
	for !s.agent.IsGameOver() {
		if maxTicks > 0 && s.tick >= maxTicks {
			break
		}
		if err := ctx.Err(); err != nil {
			return s.Summary(), err
		}
		s.Advance()
	}
	return s.Summary(), nil
}
