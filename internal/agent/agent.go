// Package agent drives a single creature around the world using its brain.
package agent

import (
	"github.com/Komalshar25/NeuroVerse/internal/brain"
	"github.com/Komalshar25/NeuroVerse/internal/world"
)

// State is the lifecycle state of an agent.
type State uint8

const (
	Alive State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "alive"
}

// Event describes what the agent found on the tile it ended the step on.
type Event uint8

const (
	EventNone Event = iota
	EventHazard
	EventFood
)

func (e Event) String() string {
	switch e {
	case EventHazard:
		return "hazard"
	case EventFood:
		return "food"
	default:
		return "none"
	}
}

// MaxHealth is the upper bound of the health scale. Zero health ends the game.
const MaxHealth = 100.0

// Params holds the per-tick constants applied by Step.
type Params struct {
	StartHealth   float64 `yaml:"start_health"`
	DecayPerTick  float64 `yaml:"decay_per_tick"`
	HazardDamage  float64 `yaml:"hazard_damage"`
	HazardPenalty int     `yaml:"hazard_penalty"`
	FoodHeal      float64 `yaml:"food_heal"`
	FoodReward    int     `yaml:"food_reward"`
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		StartHealth:   MaxHealth,
		DecayPerTick:  0.2,
		HazardDamage:  20,
		HazardPenalty: 10,
		FoodHeal:      30,
		FoodReward:    20,
	}
}

// Outcome reports what a single Step did.
type Outcome struct {
	Skipped bool

	Sensors world.Sensors
	Inputs  brain.Inputs
	Outputs brain.Outputs

	Action Action
	// Signal is the winning output value; zero for manual moves.
	Signal float64
	// Move is the requested offset before clamping to the grid.
	Move  world.Point
	Event Event

	// Ended is true when this step moved the agent into GameOver.
	Ended bool
}

// Agent owns a position, a health value that decays every tick, a score and
// exactly one brain.
type Agent struct {
	x, y   int
	health float64
	score  int
	state  State

	brain  *brain.Network
	params Params

	manual    world.Point
	hasManual bool
}

// New places an agent at spawn with full starting health.
func New(spawn world.Point, net *brain.Network, params Params) *Agent {
	return &Agent{
		x:      spawn.X,
		y:      spawn.Y,
		health: clampHealth(params.StartHealth),
		brain:  net,
		params: params,
	}
}

// Position returns the current cell.
func (a *Agent) Position() world.Point { return world.Point{X: a.x, Y: a.y} }

// Health returns the current health in [0, MaxHealth].
func (a *Agent) Health() float64 { return a.health }

// Score returns the running score.
func (a *Agent) Score() int { return a.score }

// State returns the lifecycle state.
func (a *Agent) State() State { return a.state }

// IsGameOver reports whether health ran out.
func (a *Agent) IsGameOver() bool { return a.state == GameOver }

// Brain exposes the agent's network for inspection.
func (a *Agent) Brain() *brain.Network { return a.brain }

// Params returns the tuning in effect.
func (a *Agent) Params() Params { return a.params }

// SetParams replaces the tuning used by subsequent steps.
func (a *Agent) SetParams(p Params) { a.params = p }

// ProposeMove overrides the brain's decision on the next Step only. Each
// component is reduced to its sign; a zero vector cancels the override.
func (a *Agent) ProposeMove(dx, dy int) {
	dx, dy = sign(dx), sign(dy)
	if dx == 0 && dy == 0 {
		a.hasManual = false
		a.manual = world.Point{}
		return
	}
	a.manual = world.Point{X: dx, Y: dy}
	a.hasManual = true
}

// Step advances the agent by one tick. It does nothing once the game is over.
func (a *Agent) Step(w *world.World) Outcome {
	if a.state == GameOver {
		return Outcome{Skipped: true}
	}
	var out Outcome

	a.health = clampHealth(a.health - a.params.DecayPerTick)

	out.Sensors = w.SenseDirectional(a.x, a.y)
	out.Inputs = inputsFrom(out.Sensors, a.health)
	out.Inputs.Apply(a.brain)
	out.Outputs = brain.DecodeOutputs(a.brain.Run())

	if a.hasManual {
		out.Action = Manual
		out.Move = a.manual
		a.hasManual = false
		a.manual = world.Point{}
	} else {
		out.Action, out.Signal = Choose(out.Outputs)
		dx, dy := out.Action.Delta()
		out.Move = world.Point{X: dx, Y: dy}
	}

	size := w.Size()
	a.x = clampInt(a.x+out.Move.X, 0, size-1)
	a.y = clampInt(a.y+out.Move.Y, 0, size-1)

	out.Event = a.checkTile(w)

	if a.health <= 0 {
		a.health = 0
		a.state = GameOver
		out.Ended = true
	}
	return out
}

func (a *Agent) checkTile(w *world.World) Event {
	tile, err := w.TileAt(a.x, a.y)
	if err != nil {
		return EventNone
	}
	switch tile {
	case world.Hazard:
		a.health = clampHealth(a.health - a.params.HazardDamage)
		a.score -= a.params.HazardPenalty
		return EventHazard
	case world.Food:
		if !w.ConsumeFoodAt(a.x, a.y) {
			return EventNone
		}
		a.health = clampHealth(a.health + a.params.FoodHeal)
		a.score += a.params.FoodReward
		return EventFood
	}
	return EventNone
}

// ResetState reseeds the world around the spawn cell and restores the agent
// to a fresh, living state there.
func (a *Agent) ResetState(w *world.World, spawnX, spawnY int) error {
	if err := w.Reset(world.Point{X: spawnX, Y: spawnY}); err != nil {
		return err
	}
	a.x, a.y = spawnX, spawnY
	a.health = clampHealth(a.params.StartHealth)
	a.score = 0
	a.state = Alive
	a.hasManual = false
	a.manual = world.Point{}
	return nil
}

// inputsFrom builds the network inputs. Hunger rises as health falls:
// 0 at full health, 1 at none.
func inputsFrom(s world.Sensors, health float64) brain.Inputs {
	return brain.Inputs{
		FireLeft:  s.FireLeft,
		FireRight: s.FireRight,
		FireUp:    s.FireUp,
		FireDown:  s.FireDown,
		FoodLeft:  s.FoodLeft,
		FoodRight: s.FoodRight,
		FoodUp:    s.FoodUp,
		FoodDown:  s.FoodDown,
		Hunger:    1 - health/MaxHealth,
	}
}

func clampHealth(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxHealth {
		return MaxHealth
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
