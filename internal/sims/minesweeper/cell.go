package minesweeper

// Kind is the fixed content of a cell, decided once at generation.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumbered
	KindMine
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumbered:
		return "numbered"
	case KindMine:
		return "mine"
	default:
		return "unknown"
	}
}

// Cell is one grid position. Count is 1–8 for KindNumbered and 0 otherwise.
type Cell struct {
	X, Y    int
	Kind    Kind
	Count   int
	Visible bool
	Flagged bool
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool { return c.Kind == KindMine }
