//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Komalshar25/NeuroVerse/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// LegendEntry pairs a swatch colour with its meaning.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// HUD renders the status and tuning panel to the right of the grid.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	legend   []LegendEntry
	paused   bool

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
}

// NewHUD constructs a HUD for sim with the given panel width.
func NewHUD(sim core.Sim, width int, legend []LegendEntry) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, legend: legend}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// MinHeight is the panel height needed to show every section.
func (h *HUD) MinHeight() int {
	if h == nil {
		return 0
	}
	return h.controlsTop() + len(h.controls)*lineHeight + panelPadding
}

// SetPaused toggles the paused banner.
func (h *HUD) SetPaused(paused bool) {
	if h != nil {
		h.paused = paused
	}
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)
	h.drawStatus()
	h.drawLegend(h.legendTop())
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) value(key string) string {
	if p, ok := h.snapshot.Lookup(key); ok {
		return p.Value
	}
	return "--"
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "NeuroVerse", face, panelPadding, y, titleColor)

	health, _ := strconv.ParseFloat(h.value("health"), 64)
	y += 14
	barW := float32(h.width - 2*panelPadding)
	vector.DrawFilledRect(h.panel, panelPadding, float32(y), barW, healthBarHeight, barBackground, false)
	fill := barW * float32(clamp01(health/100))
	vector.DrawFilledRect(h.panel, panelPadding, float32(y), fill, healthBarHeight, healthColor(health), false)
	y += healthBarHeight + labelBaseline

	rows := [][2]string{
		{"Health", h.value("health")},
		{"Score", h.value("score")},
		{"Tick", h.value("tick")},
		{"Seed", h.value("seed")},
		{"Action", h.value("action")},
	}
	for _, row := range rows {
		text.Draw(h.panel, row[0], face, panelPadding, y, labelColor)
		w := text.BoundString(face, row[1]).Dx()
		text.Draw(h.panel, row[1], face, h.width-panelPadding-w, y, labelColor)
		y += rowHeight
	}

	switch {
	case h.value("state") == "game_over":
		text.Draw(h.panel, "GAME OVER", face, panelPadding, y, gameOverColor)
		y += rowHeight
		text.Draw(h.panel, "press R to restart", face, panelPadding, y, mutedColor)
	case h.paused:
		text.Draw(h.panel, "PAUSED", face, panelPadding, y, mutedColor)
		y += rowHeight
		text.Draw(h.panel, "N steps, Space resumes", face, panelPadding, y, mutedColor)
	}
}

func (h *HUD) drawLegend(top int) {
	face := basicfont.Face7x13
	for i, entry := range h.legend {
		y := top + i*rowHeight
		vector.DrawFilledRect(h.panel, panelPadding, float32(y-swatchSize), swatchSize, swatchSize, entry.Color, false)
		text.Draw(h.panel, entry.Label, face, panelPadding+swatchSize+buttonGap, y, labelColor)
	}
}

func (h *HUD) legendTop() int {
	return panelPadding + headerBaseline + 14 + healthBarHeight + labelBaseline + 8*rowHeight
}

func (h *HUD) controlsTop() int {
	return h.legendTop() + len(h.legend)*rowHeight + panelPadding
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.current = parsed
		state.value = formatControl(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case !state.hasValue:
		case pointInRect(px, my, state.minusRect):
			h.apply(state, -1)
			return
		case pointInRect(px, my, state.plusRect):
			h.apply(state, 1)
			return
		}
	}
}

// target returns the value one step away from the current one in direction,
// and whether a setter exists and the bounds allow the move.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.current + float64(direction)*step
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}
	if math.Abs(next-state.current) < 1e-9 {
		return 0, false
	}
	return next, true
}

func (h *HUD) apply(state *hudControlState, direction int) {
	next, ok := h.target(state, direction)
	if !ok {
		return
	}
	var applied bool
	if state.control.Type == core.ParamTypeInt {
		applied = h.intSetter.SetIntParameter(state.control.Key, int(math.Round(next)))
	} else {
		applied = h.floatSetter.SetFloatParameter(state.control.Key, next)
	}
	if applied {
		state.current = next
		state.value = formatControl(state.control, next)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		w := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-w, y, valueColor)

		_, canDec := h.target(state, -1)
		_, canInc := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDec)
		h.drawButton(state.plusRect, "+", state.hasValue && canInc)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonDisabled, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	top := h.controlsTop()
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatControl(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	if ctrl.Step > 0 && ctrl.Step < 0.1 {
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func healthColor(health float64) color.RGBA {
	switch {
	case health > 60:
		return color.RGBA{R: 80, G: 200, B: 110, A: 255}
	case health > 25:
		return color.RGBA{R: 230, G: 190, B: 60, A: 255}
	default:
		return color.RGBA{R: 230, G: 70, B: 60, A: 255}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	gameOverColor   = color.RGBA{R: 255, G: 80, B: 70, A: 255}
	barBackground   = color.RGBA{R: 44, G: 44, B: 52, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonDisabled  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

const (
	panelPadding    = 12
	lineHeight      = 36
	rowHeight       = 18
	buttonSize      = 24
	buttonGap       = 6
	swatchSize      = 10
	healthBarHeight = 10
	headerBaseline  = 18
	labelBaseline   = 24
)
