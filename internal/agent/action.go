package agent

import "github.com/Komalshar25/NeuroVerse/internal/brain"

// Action is the movement applied during a step.
type Action uint8

const (
	Stay Action = iota
	Left
	Right
	Up
	Down
	// Manual marks a step whose move came from ProposeMove.
	Manual
)

func (a Action) String() string {
	switch a {
	case Stay:
		return "stay"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Manual:
		return "manual"
	default:
		return "unknown"
	}
}

// Delta returns the grid offset of a directional action. Up is towards y = 0.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Choose picks the strongest movement signal. Candidates are scanned in the
// order left, right, up, down and only a strictly greater value replaces the
// current best, so earlier directions win ties. A best value that is not
// positive means Stay.
func Choose(o brain.Outputs) (Action, float64) {
	candidates := [...]struct {
		action Action
		value  float64
	}{
		{Left, o.Left},
		{Right, o.Right},
		{Up, o.Up},
		{Down, o.Down},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.value > best.value {
			best = c
		}
	}
	if best.value > 0 {
		return best.action, best.value
	}
	return Stay, best.value
}
