package minesweeper

import (
	"slices"
	"testing"

	"github.com/rbrander/minesweeper/internal/core"
)

func newForced(w, h int, mode SweepMode, mines ...core.Point) *State {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 1
	cfg.Mode = mode
	return NewStateWithGrid(cfg, NewWithMines(w, h, mines))
}

func mustCell(t *testing.T, s *State, x, y int) Cell {
	t.Helper()
	c, ok := s.Cell(x, y)
	if !ok {
		t.Fatalf("cell (%d,%d) out of bounds", x, y)
	}
	return c
}

func snapshot(s *State) []Cell {
	return append([]Cell(nil), s.grid.cells...)
}

func TestThreeByThreeScenario(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 0})

	type want struct {
		kind  Kind
		count int
	}
	expects := map[core.Point]want{
		{X: 0, Y: 0}: {KindEmpty, 0},
		{X: 1, Y: 0}: {KindNumbered, 1},
		{X: 2, Y: 0}: {KindMine, 0},
		{X: 0, Y: 1}: {KindEmpty, 0},
		{X: 1, Y: 1}: {KindNumbered, 1},
		{X: 2, Y: 1}: {KindNumbered, 1},
		{X: 0, Y: 2}: {KindEmpty, 0},
		{X: 1, Y: 2}: {KindEmpty, 0},
		{X: 2, Y: 2}: {KindEmpty, 0},
	}
	for p, w := range expects {
		c := mustCell(t, s, p.X, p.Y)
		if c.Kind != w.kind || c.Count != w.count {
			t.Fatalf("cell (%d,%d) = %v/%d, want %v/%d", p.X, p.Y, c.Kind, c.Count, w.kind, w.count)
		}
	}

	s.Reveal(0, 0)
	s.Settle()

	for p := range expects {
		c := mustCell(t, s, p.X, p.Y)
		if p == (core.Point{X: 2, Y: 0}) {
			if c.Visible {
				t.Fatal("mine at (2,0) must stay hidden")
			}
			continue
		}
		if !c.Visible {
			t.Fatalf("cell (%d,%d) should be visible after expansion", p.X, p.Y)
		}
	}
	if !s.Running() {
		t.Fatal("revealing safe cells must not end the session")
	}
}

func TestRevealMineEndsSession(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 0})
	s.Reveal(2, 0)

	if s.Phase() != PhaseLost || s.Running() {
		t.Fatalf("phase = %v, want lost", s.Phase())
	}
	if !mustCell(t, s, 2, 0).Visible {
		t.Fatal("revealed mine must be visible")
	}
	if mustCell(t, s, 0, 0).Visible {
		t.Fatal("a loss must not reveal safe cells")
	}
}

func TestRevealMineShowsEveryMineIncludingFlagged(t *testing.T) {
	mines := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}, {X: 4, Y: 4}}
	s := newForced(5, 5, SweepRing, mines...)
	s.ToggleFlag(4, 4)
	s.Reveal(0, 0)

	for _, m := range mines {
		if !mustCell(t, s, m.X, m.Y).Visible {
			t.Fatalf("mine (%d,%d) should be visible after a loss", m.X, m.Y)
		}
	}
}

func TestLostIsTerminal(t *testing.T) {
	s := newForced(4, 4, SweepRing, core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 3})
	s.Reveal(0, 0)
	before := snapshot(s)

	s.Reveal(1, 1)
	s.Reveal(3, 0)
	s.Advance()
	if !slices.Equal(before, snapshot(s)) {
		t.Fatal("reveals after a loss must not change the board")
	}
	s.ToggleFlag(2, 2)
	if !mustCell(t, s, 2, 2).Flagged {
		t.Fatal("flag toggling stays allowed after a loss")
	}
	if s.Phase() != PhaseLost {
		t.Fatal("no action may return the session to playing")
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	s := newForced(4, 4, SweepRing, core.Point{X: 3, Y: 3})
	s.Reveal(2, 2)
	once := snapshot(s)
	s.Reveal(2, 2)
	if !slices.Equal(once, snapshot(s)) {
		t.Fatal("second reveal of a visible cell changed the board")
	}
}

func TestRevealRespectsFlag(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 2})
	s.ToggleFlag(0, 0)
	s.Reveal(0, 0)
	if mustCell(t, s, 0, 0).Visible {
		t.Fatal("reveal must not open a flagged cell")
	}

	s.ToggleFlag(2, 2)
	s.Reveal(2, 2)
	if s.Phase() != PhasePlaying {
		t.Fatal("a flagged mine must not be revealable")
	}
}

func TestToggleFlag(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 2})
	s.ToggleFlag(1, 1)
	if !mustCell(t, s, 1, 1).Flagged {
		t.Fatal("toggle should flag a hidden cell")
	}
	s.ToggleFlag(1, 1)
	if mustCell(t, s, 1, 1).Flagged {
		t.Fatal("double toggle should restore the original value")
	}

	s.Reveal(1, 1)
	s.ToggleFlag(1, 1)
	if mustCell(t, s, 1, 1).Flagged {
		t.Fatal("toggle on a visible cell must be a no-op")
	}
}

func TestOutOfBoundsLeavesBoardUnchanged(t *testing.T) {
	s := newForced(4, 3, SweepRing, core.Point{X: 1, Y: 1})
	before := snapshot(s)
	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -1}, {X: 100, Y: 100}} {
		s.Reveal(p.X, p.Y)
		s.ToggleFlag(p.X, p.Y)
		s.Queue(core.RevealAction(p.X, p.Y))
		s.Advance()
	}
	if !slices.Equal(before, snapshot(s)) {
		t.Fatal("out-of-bounds actions changed the board")
	}
	if s.Phase() != PhasePlaying {
		t.Fatal("out-of-bounds actions changed the phase")
	}
}

func TestExpansionNeverRevealsMines(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 20, 12
		cfg.Seed = seed
		cfg.MineProbability = 0.15
		s := NewState(cfg)

		for i, c := range s.grid.cells {
			if c.Kind == KindEmpty {
				s.grid.cells[i].Visible = true
				break
			}
		}
		s.Settle()

		for _, c := range s.grid.cells {
			if c.IsMine() && c.Visible {
				t.Fatalf("seed %d: expansion revealed mine at (%d,%d)", seed, c.X, c.Y)
			}
		}
	}
}

func TestExpansionIgnoresFlags(t *testing.T) {
	s := newForced(3, 1, SweepRing)
	s.ToggleFlag(2, 0)
	s.Reveal(0, 0)
	s.Settle()

	c := mustCell(t, s, 2, 0)
	if !c.Visible {
		t.Fatal("expansion should open a flagged neighbour")
	}
	if !c.Flagged {
		t.Fatal("expansion must leave the flag bit untouched")
	}
	if got := s.Cells()[2]; got != DisplayEmpty {
		t.Fatalf("display code = %d, want visible empty", got)
	}
}

func TestRingModeOpensOneStepAgainstScanOrder(t *testing.T) {
	s := newForced(5, 1, SweepRing)
	s.Reveal(4, 0)

	visible := 0
	for x := 0; x < 5; x++ {
		if mustCell(t, s, x, 0).Visible {
			visible++
		}
	}
	if visible != 2 {
		t.Fatalf("ring reveal opened %d cells, want 2", visible)
	}
	if passes := s.Settle(); passes != 3 {
		t.Fatalf("Settle took %d passes, want 3", passes)
	}
	if s.Stats().HiddenSafe != 0 {
		t.Fatal("settling should open the whole region")
	}
}

func TestFloodModeOpensRegionImmediately(t *testing.T) {
	s := newForced(5, 1, SweepFlood)
	s.Reveal(4, 0)
	if hidden := s.Stats().HiddenSafe; hidden != 0 {
		t.Fatalf("flood reveal left %d safe cells hidden", hidden)
	}
	if s.Settle() != 0 {
		t.Fatal("a flooded board should already be at its fixed point")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Seed = 42
	s := NewState(cfg)
	first := snapshot(s)

	s.Reveal(3, 3)
	s.ToggleFlag(0, 0)
	s.Reset(0)

	if !slices.Equal(first, snapshot(s)) {
		t.Fatal("Reset with the configured seed should rebuild the same board")
	}
	if s.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", s.Seed())
	}

	s.Reset(7)
	other := snapshot(s)
	s.Reset(7)
	if !slices.Equal(other, snapshot(s)) {
		t.Fatal("Reset with an explicit seed should be deterministic")
	}
	if s.Phase() != PhasePlaying || s.Stats().Ticks != 0 {
		t.Fatal("Reset should return to a fresh playing session")
	}
}

func TestObserverReceivesTransitions(t *testing.T) {
	s := newForced(2, 2, SweepRing, core.Point{X: 1, Y: 1})
	var events []Event
	s.SetObserver(func(e Event) { events = append(events, e) })

	s.Reveal(1, 1)
	s.Reset(3)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != EventLost || events[0].X != 1 || events[0].Y != 1 {
		t.Fatalf("first event = %+v, want loss at (1,1)", events[0])
	}
	if events[1].Kind != EventReset || events[1].Seed != 3 {
		t.Fatalf("second event = %+v, want reset with seed 3", events[1])
	}
}

func TestNewStateWithGridInstallsForcedBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1, 1
	cfg.MineProbability = 1
	cfg.Seed = 5
	g := NewWithMines(3, 2, []core.Point{{X: 1, Y: 1}})
	s := NewStateWithGrid(cfg, g)

	if s.Grid() != g {
		t.Fatal("forced grid was not installed")
	}
	if s.Size() != (core.Size{W: 3, H: 2}) {
		t.Fatalf("size = %+v, want 3x2 from the forced grid", s.Size())
	}
	if s.Seed() != 5 || !s.Running() || s.Stats().Mines != 1 {
		t.Fatalf("seed=%d running=%v mines=%d", s.Seed(), s.Running(), s.Stats().Mines)
	}
}

func TestStats(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 0})
	s.ToggleFlag(2, 0)
	s.Reveal(1, 0)

	st := s.Stats()
	if st.Mines != 1 || st.Flags != 1 || st.Visible != 1 || st.HiddenSafe != 7 {
		t.Fatalf("unexpected stats %+v", st)
	}
}
