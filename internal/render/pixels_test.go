package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 9, G: 8, B: 7, A: 128},
	}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 255, 9, 8, 7, 128, 9, 8, 7, 128}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{5, 5, 5, 5, 5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want transparent black", i, b)
		}
	}
}
