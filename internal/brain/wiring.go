package brain

import "fmt"

// Node names used by the directional wiring.
const (
	FireLeft  = "fire_left"
	FireRight = "fire_right"
	FireUp    = "fire_up"
	FireDown  = "fire_down"
	FoodLeft  = "food_left"
	FoodRight = "food_right"
	FoodUp    = "food_up"
	FoodDown  = "food_down"
	Hunger    = "hunger_sensor"

	MoveLeft  = "move_left"
	MoveRight = "move_right"
	MoveUp    = "move_up"
	MoveDown  = "move_down"
)

// Weights used by NewDirectional. Fear outweighs appetite so an adjacent
// hazard always cancels the pull of adjacent food in the same direction.
const (
	WeightFireToward = -3.0
	WeightFireAway   = 2.0
	WeightFood       = 1.0
	WeightHunger     = 0.2
)

// Inputs is the fixed sensor record fed to the network each tick.
type Inputs struct {
	FireLeft, FireRight, FireUp, FireDown float64
	FoodLeft, FoodRight, FoodUp, FoodDown float64

	// Hunger grows from 0 (full health) to 1 (no health left).
	Hunger float64
}

// Apply writes every field to its input node.
func (in Inputs) Apply(n *Network) {
	n.SetInput(FireLeft, in.FireLeft)
	n.SetInput(FireRight, in.FireRight)
	n.SetInput(FireUp, in.FireUp)
	n.SetInput(FireDown, in.FireDown)
	n.SetInput(FoodLeft, in.FoodLeft)
	n.SetInput(FoodRight, in.FoodRight)
	n.SetInput(FoodUp, in.FoodUp)
	n.SetInput(FoodDown, in.FoodDown)
	n.SetInput(Hunger, in.Hunger)
}

// Outputs is the fixed record of movement signals read back after Run.
type Outputs struct {
	Left, Right, Up, Down float64
}

// DecodeOutputs reads the four movement nodes from a Run result. Missing
// nodes read as 0.
func DecodeOutputs(values map[string]float64) Outputs {
	return Outputs{
		Left:  values[MoveLeft],
		Right: values[MoveRight],
		Up:    values[MoveUp],
		Down:  values[MoveDown],
	}
}

// LinkSpec describes one weighted edge of a fixed wiring.
type LinkSpec struct {
	From, To string
	Weight   float64
}

// NodeSpec describes one node of a fixed wiring.
type NodeSpec struct {
	Name string
	Kind Kind
}

// Build constructs a network from node and link lists, in order.
func Build(nodes []NodeSpec, links []LinkSpec, opts ...Option) (*Network, error) {
	n := New(opts...)
	for _, spec := range nodes {
		if err := n.AddNode(spec.Name, spec.Kind); err != nil {
			return nil, err
		}
	}
	for _, l := range links {
		if err := n.Link(l.From, l.To, l.Weight); err != nil {
			return nil, fmt.Errorf("link %s->%s: %w", l.From, l.To, err)
		}
	}
	return n, nil
}

// DirectionalNodes lists the nodes of the directional wiring in insertion order.
func DirectionalNodes() []NodeSpec {
	return []NodeSpec{
		{FireLeft, Input}, {FireRight, Input}, {FireUp, Input}, {FireDown, Input},
		{FoodLeft, Input}, {FoodRight, Input}, {FoodUp, Input}, {FoodDown, Input},
		{Hunger, Input},
		{MoveLeft, Output}, {MoveRight, Output}, {MoveUp, Output}, {MoveDown, Output},
	}
}

// DirectionalLinks lists the edges of the directional wiring.
func DirectionalLinks() []LinkSpec {
	type dir struct{ fire, food, move, opposite string }
	dirs := []dir{
		{FireLeft, FoodLeft, MoveLeft, MoveRight},
		{FireRight, FoodRight, MoveRight, MoveLeft},
		{FireUp, FoodUp, MoveUp, MoveDown},
		{FireDown, FoodDown, MoveDown, MoveUp},
	}

	links := make([]LinkSpec, 0, 16)
	for _, d := range dirs {
		links = append(links, LinkSpec{d.fire, d.move, WeightFireToward})
	}
	for _, d := range dirs {
		links = append(links, LinkSpec{d.fire, d.opposite, WeightFireAway})
	}
	for _, d := range dirs {
		links = append(links, LinkSpec{d.food, d.move, WeightFood})
	}
	for _, d := range dirs {
		links = append(links, LinkSpec{Hunger, d.move, WeightHunger})
	}
	return links
}

// NewDirectional builds the hand-wired hazard-avoiding, food-seeking network.
func NewDirectional(opts ...Option) (*Network, error) {
	return Build(DirectionalNodes(), DirectionalLinks(), opts...)
}
