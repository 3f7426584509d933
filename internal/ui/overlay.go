//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Komalshar25/NeuroVerse/internal/agent"
	"github.com/Komalshar25/NeuroVerse/internal/world"
)

type decisionProvider interface {
	Agent() *agent.Agent
	LastOutcome() agent.Outcome
}

// Overlay draws what the agent sensed and chose on the last tick. Key 1
// toggles the sensor markers, key 2 the decision arrow.
type Overlay struct {
	src          decisionProvider
	scale        int
	showSensors  bool
	showDecision bool
}

// NewOverlay constructs an overlay with both layers visible.
func NewOverlay(src decisionProvider, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{src: src, scale: scale, showSensors: true, showDecision: true}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSensors = !o.showSensors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDecision = !o.showDecision
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	a := o.src.Agent()
	if a == nil {
		return
	}
	out := o.src.LastOutcome()
	cx, cy := o.center(a.Position())

	if o.showSensors {
		s := out.Sensors
		o.drawSense(screen, cx, cy, -1, 0, s.FireLeft, s.FoodLeft)
		o.drawSense(screen, cx, cy, 1, 0, s.FireRight, s.FoodRight)
		o.drawSense(screen, cx, cy, 0, -1, s.FireUp, s.FoodUp)
		o.drawSense(screen, cx, cy, 0, 1, s.FireDown, s.FoodDown)
	}
	if o.showDecision && !a.IsGameOver() {
		dx, dy := out.Action.Delta()
		if out.Action == agent.Manual {
			dx, dy = out.Move.X, out.Move.Y
		}
		if dx == 0 && dy == 0 {
			o.drawPoint(screen, cx, cy, float32(o.scale)/6, decisionColor)
			return
		}
		reach := float32(o.scale) * 0.45
		o.drawLine(screen, cx, cy, cx+float32(dx)*reach, cy+float32(dy)*reach, decisionColor)
	}
}

func (o *Overlay) drawSense(screen *ebiten.Image, cx, cy float32, dx, dy int, fire, food float64) {
	var col color.RGBA
	switch {
	case fire > 0:
		col = fireSenseColor
	case food > 0:
		col = foodSenseColor
	default:
		return
	}
	reach := float32(o.scale) * 0.8
	o.drawPoint(screen, cx+float32(dx)*reach, cy+float32(dy)*reach, float32(o.scale)/8, col)
}

func (o *Overlay) center(p world.Point) (float32, float32) {
	s := float32(o.scale)
	return (float32(p.X) + 0.5) * s, (float32(p.Y) + 0.5) * s
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, r float32, col color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, x, y, r, col, true)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2 float32, col color.RGBA) {
	width := float32(o.scale) / 10
	if width < 1 {
		width = 1
	}
	vector.StrokeLine(screen, x1, y1, x2, y2, width, col, true)
	o.drawPoint(screen, x2, y2, width*1.5, col)
}

var (
	fireSenseColor = color.RGBA{R: 255, G: 170, B: 60, A: 220}
	foodSenseColor = color.RGBA{R: 160, G: 255, B: 140, A: 220}
	decisionColor  = color.RGBA{R: 255, G: 255, B: 255, A: 230}
)
