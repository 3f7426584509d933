package game

import (
	"image/color"

	"github.com/Komalshar25/NeuroVerse/internal/world"
)

const (
	displayTileMask = 0x03
	displayAgentBit = 0x04
	displayDeadBit  = 0x08
)

// DisplayAgent is the display value of a living agent on an empty cell.
const DisplayAgent = displayAgentBit

var sessionPalette = buildPalette()

// Cells returns the display buffer: the tile value of every cell with the
// agent bit set on the agent's cell and the dead bit set once it died.
func (s *Session) Cells() []uint8 {
	tiles := s.world.Cells()
	if len(s.display) != len(tiles) {
		s.display = make([]uint8, len(tiles))
	}
	copy(s.display, tiles)
	pos := s.agent.Position()
	if s.world.InBounds(pos.X, pos.Y) {
		i := pos.Y*s.cfg.Size + pos.X
		s.display[i] |= displayAgentBit
		if s.agent.IsGameOver() {
			s.display[i] |= displayDeadBit
		}
	}
	return s.display
}

// Palette maps display values to colours.
func (s *Session) Palette() []color.RGBA { return sessionPalette }

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 16)
	for i := range palette {
		tile := world.Tile(i & displayTileMask)
		palette[i] = paletteColorFor(tile, i&displayAgentBit != 0, i&displayDeadBit != 0)
	}
	return palette
}

func paletteColorFor(tile world.Tile, agentHere, dead bool) color.RGBA {
	if agentHere {
		if dead {
			return color.RGBA{R: 110, G: 110, B: 120, A: 255}
		}
		return color.RGBA{R: 70, G: 140, B: 255, A: 255}
	}
	switch tile {
	case world.Hazard:
		return color.RGBA{R: 230, G: 70, B: 40, A: 255}
	case world.Food:
		return color.RGBA{R: 70, G: 190, B: 80, A: 255}
	default:
		return color.RGBA{R: 28, G: 28, B: 34, A: 255}
	}
}
