package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 128},
	}
	cells := []uint8{0, 2, 1, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		1, 2, 3, 255,
		200, 100, 50, 128,
		10, 20, 30, 255,
		200, 100, 50, 128,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: expected %d, got %d", i, want[i], buf[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{1, 3}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH, want int
	}{
		{10, 10, 640, 480, 48},
		{10, 20, 640, 480, 24},
		{100, 100, 50, 50, 1},
		{0, 10, 640, 480, 1},
	}
	for _, c := range cases {
		if got := Fit(c.w, c.h, c.maxW, c.maxH); got != c.want {
			t.Errorf("Fit(%d,%d,%d,%d) = %d, want %d", c.w, c.h, c.maxW, c.maxH, got, c.want)
		}
	}
}
