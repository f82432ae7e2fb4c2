package minesweeper

import "github.com/rbrander/minesweeper/internal/core"

// Expand runs one flood-fill pass over the whole grid and reports whether it
// revealed anything. Every visible empty cell opens its hidden non-mine
// neighbours. The scan is row-major and in place, so cells opened earlier in
// the pass can expand later in the same pass. Flags are ignored and left set.
func (s *State) Expand() bool {
	g := s.grid
	changed := false
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			c := &g.cells[g.size.Index(x, y)]
			if !c.Visible || c.Kind != KindEmpty {
				continue
			}
			for _, n := range core.Neighbors(x, y) {
				nc := g.at(n.X, n.Y)
				if nc == nil || nc.Kind == KindMine {
					continue
				}
				if g.setVisible(n.X, n.Y) {
					changed = true
				}
			}
		}
	}
	return changed
}

// Settle repeats Expand until a pass changes nothing and returns the number
// of passes that did change something.
func (s *State) Settle() int {
	passes := 0
	for s.Expand() {
		passes++
	}
	return passes
}

func (s *State) expand() {
	if s.cfg.Mode == SweepFlood {
		s.Settle()
		return
	}
	s.Expand()
}
