//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image per grid and redraws it from palette
// indexed cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads cells into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
