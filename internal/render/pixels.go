// Package render turns display buffers into pixels.
package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last colour. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Fit returns the largest integer cell scale that keeps a w*h grid within
// maxW*maxH pixels, never less than 1.
func Fit(w, h, maxW, maxH int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale < 1 {
		return 1
	}
	return scale
}
