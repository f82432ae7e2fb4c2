package app

import "github.com/rbrander/minesweeper/internal/core"

// MouseButton is the subset of pointer buttons the board reacts to.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// CellFromPixel maps a surface position to the cell under it. Positions left
// of or above the origin map to negative cells, which the game ignores.
func CellFromPixel(px, py, cellSize int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return floorDiv(px, cellSize), floorDiv(py, cellSize)
}

// ActionFor translates a released button at a surface position into a board
// action. Left reveals, right toggles a flag; other buttons map to nothing.
func ActionFor(button MouseButton, px, py, cellSize int) (core.Action, bool) {
	x, y := CellFromPixel(px, py, cellSize)
	switch button {
	case MouseLeft:
		return core.RevealAction(x, y), true
	case MouseRight:
		return core.ToggleFlagAction(x, y), true
	default:
		return core.Action{}, false
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
