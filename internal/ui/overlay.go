//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/rbrander/minesweeper/internal/core"
	"github.com/rbrander/minesweeper/internal/sims/minesweeper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	bevelLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bevelDark  = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	glyphInk   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	flagRed    = color.RGBA{R: 210, G: 32, B: 32, A: 255}
)

// Overlay draws cell bevels and glyphs (digits, mines, flags) over the
// palette fill painted by render.GridPainter.
type Overlay struct {
	sim      core.Sim
	cellSize int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Overlay{sim: sim, cellSize: cellSize}
}

// Draw renders bevels and glyphs for every cell onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	cells := o.sim.Cells()
	if len(cells) != size.Area() {
		return
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			code := cells[size.Index(x, y)]
			px := float32(x * o.cellSize)
			py := float32(y * o.cellSize)
			o.drawBevel(screen, px, py, code >= minesweeper.DisplayEmpty)
			o.drawGlyph(screen, px, py, code)
		}
	}
}

// drawBevel outlines the cell and draws the lower-right edge in the opposite
// shade, so hidden cells look raised and open ones sunken.
func (o *Overlay) drawBevel(screen *ebiten.Image, px, py float32, open bool) {
	cs := float32(o.cellSize)
	outer, edge := bevelLight, bevelDark
	if open {
		outer, edge = bevelDark, bevelLight
	}
	vector.StrokeRect(screen, px, py, cs, cs, 2, outer, false)
	vector.StrokeLine(screen, px+cs-1, py+1, px+cs-1, py+cs-1, 2, edge, false)
	vector.StrokeLine(screen, px+cs-1, py+cs-1, px+1, py+cs-1, 2, edge, false)
}

func (o *Overlay) drawGlyph(screen *ebiten.Image, px, py float32, code uint8) {
	cs := float32(o.cellSize)
	cx := px + cs/2
	cy := py + cs/2
	switch {
	case code == minesweeper.DisplayMine:
		vector.DrawFilledCircle(screen, cx, cy, cs*0.3, glyphInk, true)
		vector.StrokeLine(screen, cx-cs*0.4, cy, cx+cs*0.4, cy, 1.5, glyphInk, true)
		vector.StrokeLine(screen, cx, cy-cs*0.4, cx, cy+cs*0.4, 1.5, glyphInk, true)
	case code == minesweeper.DisplayFlagged:
		vector.DrawFilledRect(screen, cx, py+cs*0.2, 1.5, cs*0.6, glyphInk, false)
		vector.StrokeLine(screen, cx, py+cs*0.2, cx-cs*0.3, py+cs*0.35, 2, flagRed, true)
		vector.StrokeLine(screen, cx-cs*0.3, py+cs*0.35, cx, py+cs*0.5, 2, flagRed, true)
		vector.DrawFilledRect(screen, cx-cs*0.2, py+cs*0.78, cs*0.45, 1.5, glyphInk, false)
	case code >= minesweeper.DisplayNumber1:
		n := int(code-minesweeper.DisplayNumber1) + 1
		label := strconv.Itoa(n)
		face := basicfont.Face7x13
		bounds := text.BoundString(face, label)
		x := int(cx) - bounds.Dx()/2
		y := int(cy) + bounds.Dy()/2
		text.Draw(screen, label, face, x, y, minesweeper.NumberColor(n))
	}
}
