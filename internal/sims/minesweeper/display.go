package minesweeper

import "image/color"

// Display codes written by Cells, one per cell.
const (
	DisplayHidden  uint8 = 0
	DisplayFlagged uint8 = 1
	DisplayEmpty   uint8 = 2
	DisplayMine    uint8 = 3
	// DisplayNumber1 is the code for a visible 1; counts 2–8 follow it.
	DisplayNumber1 uint8 = 4
)

var (
	minesweeperPalette = buildPalette()
	numberColors       = [9]color.RGBA{
		{},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 128, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 128, G: 0, B: 128, A: 255},
		{R: 128, G: 0, B: 0, A: 255},
		{R: 0, G: 128, B: 128, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 96, G: 96, B: 96, A: 255},
	}
)

// Cells returns the display buffer, rebuilt when the board changed.
func (s *State) Cells() []uint8 {
	if !s.displayOK || s.displayRev != s.grid.rev {
		s.rebuildDisplay()
	}
	return s.display.Cells()
}

// Cell returns a copy of the cell at (x, y) for renderers. Out-of-range
// coordinates yield the zero Cell and false.
func (s *State) Cell(x, y int) (Cell, bool) {
	c, err := s.grid.CellAt(x, y)
	return c, err == nil
}

// Palette exposes one fill colour per display code.
func (s *State) Palette() []color.RGBA { return minesweeperPalette }

// NumberColor returns the digit colour for an adjacency count of 1–8.
func NumberColor(n int) color.RGBA {
	if n < 1 || n >= len(numberColors) {
		return color.RGBA{A: 255}
	}
	return numberColors[n]
}

// DisplayCode encodes the renderer-facing state of c. Visibility wins over a
// leftover flag bit.
func DisplayCode(c Cell) uint8 {
	if !c.Visible {
		if c.Flagged {
			return DisplayFlagged
		}
		return DisplayHidden
	}
	switch c.Kind {
	case KindMine:
		return DisplayMine
	case KindNumbered:
		return DisplayNumber1 + uint8(c.Count-1)
	default:
		return DisplayEmpty
	}
}

func (s *State) rebuildDisplay() {
	s.display.Clear()
	for _, c := range s.grid.cells {
		s.display.Set(c.X, c.Y, DisplayCode(c))
	}
	s.displayRev = s.grid.rev
	s.displayOK = true
}

func buildPalette() []color.RGBA {
	hidden := color.RGBA{R: 204, G: 204, B: 204, A: 255}
	open := color.RGBA{R: 189, G: 189, B: 189, A: 255}
	palette := make([]color.RGBA, int(DisplayNumber1)+8)
	for i := range palette {
		palette[i] = open
	}
	palette[DisplayHidden] = hidden
	palette[DisplayFlagged] = hidden
	palette[DisplayMine] = color.RGBA{R: 220, G: 80, B: 70, A: 255}
	return palette
}
