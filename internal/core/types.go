package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a driver needs to run and paint a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Cells() []uint8
}
