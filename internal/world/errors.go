package world

import "fmt"

// OutOfBoundsError reports a coordinate outside the grid.
type OutOfBoundsError struct {
	X, Y int
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("world: (%d,%d) outside %dx%d grid", e.X, e.Y, e.Size, e.Size)
}

// CapacityError reports that the grid has no free cell left for a tile.
type CapacityError struct {
	Tile   Tile
	Placed int
	Wanted int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("world: no free cell for %s tile (placed %d of %d)", e.Tile, e.Placed, e.Wanted)
}
