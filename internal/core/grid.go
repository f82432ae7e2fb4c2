package core

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// mooreOffsets lists the eight neighbour offsets in row-major order.
var mooreOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns all eight Moore-neighbourhood candidates of (x, y).
// Candidates are not bounds-checked; callers filter with Size.Contains.
func Neighbors(x, y int) [8]Point {
	var out [8]Point
	for i, o := range mooreOffsets {
		out[i] = Point{X: x + o.X, Y: y + o.Y}
	}
	return out
}

// Contains reports whether (x, y) lies inside a grid of this size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the row-major slice index for (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Area returns the number of cells.
func (s Size) Area() int { return s.W * s.H }

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Set writes v at (x, y). Out-of-range coordinates are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.Size().Contains(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
