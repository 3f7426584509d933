//go:build !ebiten

package ui

import (
	"image/color"

	"github.com/Komalshar25/NeuroVerse/internal/core"
)

// LegendEntry pairs a swatch colour with its meaning.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, []LegendEntry) *HUD { return nil }

// MinHeight is zero in the headless build.
func (h *HUD) MinHeight() int { return 0 }

// SetPaused is a no-op in the headless build.
func (h *HUD) SetPaused(bool) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
