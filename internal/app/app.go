//go:build ebiten

// Package app adapts a game session to the ebiten.Game interface.
package app

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Komalshar25/NeuroVerse/internal/core"
	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/render"
	"github.com/Komalshar25/NeuroVerse/internal/ui"
	"github.com/Komalshar25/NeuroVerse/internal/world"
)

// HUDWidth is the width of the side panel in pixels.
const HUDWidth = 220

// Game drives a session from keyboard input and a fixed tick rate.
type Game struct {
	session *game.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	pace    pacer
	logger  *slog.Logger

	scale    int
	paused   bool
	stepOnce bool
}

// New constructs a Game for session drawn at scale pixels per cell.
func New(session *game.Session, scale int, logger *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Size()
	palette := session.Palette()
	legend := []ui.LegendEntry{
		{Label: "Agent", Color: palette[game.DisplayAgent]},
		{Label: "Hazard", Color: palette[world.Hazard]},
		{Label: "Food", Color: palette[world.Food]},
	}
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(session, HUDWidth, legend),
		overlay: ui.NewOverlay(session, scale),
		timer:   core.NewFixedStep(session.Config().TPS),
		logger:  logger,
		scale:   scale,
	}
}

var moveKeys = []struct {
	keys   []ebiten.Key
	dx, dy int
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, -1, 0},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, 1, 0},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, 0, -1},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, 0, 1},
}

// Update handles input and advances the session when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		g.pace.reset()
		g.timer.Reset()
	}
	g.paint()
	for _, mk := range moveKeys {
		for _, k := range mk.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.pace.queue(mk.dx, mk.dy)
			}
		}
	}

	g.overlay.Update()
	g.hud.SetPaused(g.paused)
	g.hud.Update(g.gridWidth())

	switch {
	case g.stepOnce:
		g.pace.tick(g.session, true)
		g.stepOnce = false
	case g.paused:
	case g.timer.ShouldStep():
		g.pace.tick(g.session, false)
	}
	return nil
}

var paintButtons = []struct {
	button ebiten.MouseButton
	tile   world.Tile
}{
	{ebiten.MouseButtonLeft, world.Food},
	{ebiten.MouseButtonRight, world.Hazard},
	{ebiten.MouseButtonMiddle, world.Empty},
}

// paint edits the clicked grid cell: left places food, right a hazard and
// middle clears it.
func (g *Game) paint() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridWidth() {
		return
	}
	x, y := mx/g.scale, my/g.scale
	for _, pb := range paintButtons {
		if !inpututil.IsMouseButtonJustPressed(pb.button) {
			continue
		}
		if err := g.session.Paint(x, y, pb.tile); err != nil {
			g.logger.Debug("paint skipped", "x", x, "y", y, "err", err)
		}
	}
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), g.session.Palette(), g.scale)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.gridWidth(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	h := s.H * g.scale
	if m := g.hud.MinHeight(); m > h {
		h = m
	}
	return g.gridWidth() + HUDWidth, h
}

func (g *Game) gridWidth() int { return g.session.Size().W * g.scale }
