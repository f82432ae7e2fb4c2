package minesweeper

import (
	"errors"
	"fmt"

	"github.com/rbrander/minesweeper/internal/core"
	pcore "github.com/rbrander/minesweeper/pkg/core"
)

// ErrOutOfBounds is returned by CellAt for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Grid owns the cells of one board. Kinds are frozen after construction; only
// the visible and flagged bits change afterwards, through GameState.
type Grid struct {
	size  core.Size
	cells []Cell
	mines int
	rev   uint64
}

// New allocates a cols*rows grid where every cell independently becomes a mine
// with probability mineProbability, then computes adjacency counts. Cells
// draw from rng in row-major order.
func New(cols, rows int, mineProbability float64, rng *pcore.RNG) *Grid {
	g := allocGrid(cols, rows)
	p := clampProbability(mineProbability)
	for i := range g.cells {
		if rng.Chance(p) {
			g.cells[i].Kind = KindMine
		}
	}
	g.computeNumbers()
	return g
}

// NewWithMines builds a grid with mines at exactly the given coordinates.
// Coordinates outside the grid are ignored.
func NewWithMines(cols, rows int, mines []core.Point) *Grid {
	g := allocGrid(cols, rows)
	for _, m := range mines {
		if !g.size.Contains(m.X, m.Y) {
			continue
		}
		g.cells[g.size.Index(m.X, m.Y)].Kind = KindMine
	}
	g.computeNumbers()
	return g
}

func allocGrid(cols, rows int) *Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	size := core.Size{W: cols, H: rows}
	cells := make([]Cell, size.Area())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cells[size.Index(x, y)] = Cell{X: x, Y: y}
		}
	}
	return &Grid{size: size, cells: cells}
}

// computeNumbers must run after every mine is placed.
func (g *Grid) computeNumbers() {
	g.mines = 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind == KindMine {
			g.mines++
			continue
		}
		count := 0
		for _, n := range core.Neighbors(c.X, c.Y) {
			if g.size.Contains(n.X, n.Y) && g.cells[g.size.Index(n.X, n.Y)].Kind == KindMine {
				count++
			}
		}
		c.Count = count
		c.Kind = KindEmpty
		if count > 0 {
			c.Kind = KindNumbered
		}
	}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() core.Size { return g.size }

// InBounds reports whether (x, y) addresses a cell of this grid.
func (g *Grid) InBounds(x, y int) bool { return g.size.Contains(x, y) }

// Neighbors returns the eight Moore-neighbourhood candidates of (x, y),
// including ones outside the grid.
func (g *Grid) Neighbors(x, y int) [8]core.Point { return core.Neighbors(x, y) }

// CellAt returns a copy of the cell at (x, y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if !g.size.Contains(x, y) {
		return Cell{}, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, g.size.W, g.size.H, ErrOutOfBounds)
	}
	return g.cells[g.size.Index(x, y)], nil
}

// MineCount returns the number of mines placed at generation.
func (g *Grid) MineCount() int { return g.mines }

func (g *Grid) at(x, y int) *Cell {
	if !g.size.Contains(x, y) {
		return nil
	}
	return &g.cells[g.size.Index(x, y)]
}

// setVisible marks (x, y) visible and reports whether anything changed.
func (g *Grid) setVisible(x, y int) bool {
	c := g.at(x, y)
	if c == nil || c.Visible {
		return false
	}
	c.Visible = true
	g.rev++
	return true
}

// toggleFlag flips the flag on a hidden cell and reports whether it did.
func (g *Grid) toggleFlag(x, y int) bool {
	c := g.at(x, y)
	if c == nil || c.Visible {
		return false
	}
	c.Flagged = !c.Flagged
	g.rev++
	return true
}

// revealMines makes every mine visible regardless of its flag.
func (g *Grid) revealMines() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind == KindMine && !c.Visible {
			c.Visible = true
			g.rev++
		}
	}
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
