// Package world holds the tile grid the agent moves on.
package world

import (
	"errors"

	"github.com/Komalshar25/NeuroVerse/internal/core"
)

// Tile enumerates the contents of a grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Hazard
	Food
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Hazard:
		return "hazard"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

const (
	DefaultSize        = 10
	DefaultHazards     = 3
	DefaultFood        = 4
	DefaultMaxAttempts = 1000
)

type settings struct {
	hazards     int
	food        int
	maxAttempts int
}

// Option tunes tile placement.
type Option func(*settings)

// WithHazards sets how many hazard tiles Reset places.
func WithHazards(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.hazards = n
		}
	}
}

// WithFood sets how many food tiles Reset places.
func WithFood(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.food = n
		}
	}
}

// WithMaxAttempts bounds the random draws per tile before Reset falls back to
// scanning for free cells.
func WithMaxAttempts(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// World is a square grid of tiles seeded from an injected random source.
type World struct {
	grid  *core.ByteGrid
	size  int
	rng   *core.RNG
	spawn Point
	cfg   settings
}

// New allocates a size×size world and seeds it, keeping spawn clear.
func New(size int, spawn Point, rng *core.RNG, opts ...Option) (*World, error) {
	if size <= 0 {
		return nil, errors.New("world: size must be positive")
	}
	if rng == nil {
		return nil, errors.New("world: random source is required")
	}
	cfg := settings{hazards: DefaultHazards, food: DefaultFood, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &World{
		grid: core.NewByteGrid(size, size),
		size: size,
		rng:  rng,
		cfg:  cfg,
	}
	if err := w.Reset(spawn); err != nil {
		return nil, err
	}
	return w, nil
}

// Size reports the edge length of the grid.
func (w *World) Size() int { return w.size }

// Spawn reports the cell kept clear by the last Reset.
func (w *World) Spawn() Point { return w.spawn }

// InBounds reports whether (x, y) lies on the grid.
func (w *World) InBounds(x, y int) bool { return w.grid.InBounds(x, y) }

// Cells exposes the row-major tile values for painting.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Reset clears the grid and places hazards then food on distinct random
// empty cells other than spawn. On error the previous layout and spawn are
// left untouched.
func (w *World) Reset(spawn Point) error {
	if !w.InBounds(spawn.X, spawn.Y) {
		return &OutOfBoundsError{X: spawn.X, Y: spawn.Y, Size: w.size}
	}
	next := core.NewByteGrid(w.size, w.size)
	if err := w.scatter(next, spawn, Hazard, w.cfg.hazards); err != nil {
		return err
	}
	if err := w.scatter(next, spawn, Food, w.cfg.food); err != nil {
		return err
	}
	copy(w.grid.Cells(), next.Cells())
	w.spawn = spawn
	return nil
}

func (w *World) scatter(g *core.ByteGrid, spawn Point, tile Tile, count int) error {
	for placed := 0; placed < count; placed++ {
		p, ok := w.freeCell(g, spawn)
		if !ok {
			return &CapacityError{Tile: tile, Placed: placed, Wanted: count}
		}
		g.Set(p.X, p.Y, uint8(tile))
	}
	return nil
}

func (w *World) freeCell(g *core.ByteGrid, spawn Point) (Point, bool) {
	isFree := func(p Point) bool {
		return p != spawn && Tile(g.At(p.X, p.Y)) == Empty
	}
	for attempt := 0; attempt < w.cfg.maxAttempts; attempt++ {
		p := Point{X: w.rng.IntN(w.size), Y: w.rng.IntN(w.size)}
		if isFree(p) {
			return p, true
		}
	}
	var free []Point
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			if p := (Point{X: x, Y: y}); isFree(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[w.rng.IntN(len(free))], true
}

// TileAt returns the tile at (x, y).
func (w *World) TileAt(x, y int) (Tile, error) {
	if !w.InBounds(x, y) {
		return Empty, &OutOfBoundsError{X: x, Y: y, Size: w.size}
	}
	return Tile(w.grid.At(x, y)), nil
}

// Place overwrites the tile at (x, y).
func (w *World) Place(x, y int, tile Tile) error {
	if !w.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Size: w.size}
	}
	w.grid.Set(x, y, uint8(tile))
	return nil
}

// ConsumeFoodAt empties a food tile and reports whether there was one.
func (w *World) ConsumeFoodAt(x, y int) bool {
	if !w.InBounds(x, y) || Tile(w.grid.At(x, y)) != Food {
		return false
	}
	w.grid.Set(x, y, uint8(Empty))
	return true
}

// Count returns the number of cells holding tile.
func (w *World) Count(tile Tile) int { return w.grid.Count(uint8(tile)) }
