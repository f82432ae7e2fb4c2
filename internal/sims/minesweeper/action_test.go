package minesweeper

import (
	"testing"

	"github.com/rbrander/minesweeper/internal/core"
)

func TestQueueHoldsOneAction(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 2, Y: 2})
	if !s.Queue(core.ToggleFlagAction(0, 0)) {
		t.Fatal("first action should be accepted")
	}
	if s.Queue(core.RevealAction(1, 1)) {
		t.Fatal("second action must be refused while one is pending")
	}
	if s.Queue(core.Action{}) {
		t.Fatal("actions of unknown kind must be refused")
	}

	s.Advance()
	if !mustCell(t, s, 0, 0).Flagged {
		t.Fatal("Advance should apply the pending flag toggle")
	}
	if mustCell(t, s, 1, 1).Visible {
		t.Fatal("the refused reveal must never be applied")
	}
	if _, ok := s.Pending(); ok {
		t.Fatal("Advance should consume the pending action")
	}

	s.Advance()
	if !mustCell(t, s, 0, 0).Flagged {
		t.Fatal("a consumed action must not be applied twice")
	}
}

func TestAdvanceRunsOneRingPerTick(t *testing.T) {
	s := newForced(5, 1, SweepRing)
	s.Queue(core.RevealAction(4, 0))

	wantVisible := []int{2, 3, 4, 5, 5}
	for tick, want := range wantVisible {
		s.Advance()
		if got := s.Stats().Visible; got != want {
			t.Fatalf("tick %d: %d visible, want %d", tick+1, got, want)
		}
	}
	if s.Stats().Ticks != len(wantVisible) {
		t.Fatalf("Ticks = %d, want %d", s.Stats().Ticks, len(wantVisible))
	}
}

func TestAdvanceFloodSettlesInOneTick(t *testing.T) {
	s := newForced(6, 4, SweepFlood, core.Point{X: 5, Y: 3})
	s.Queue(core.RevealAction(0, 0))
	s.Advance()
	if hidden := s.Stats().HiddenSafe; hidden != 0 {
		t.Fatalf("flood tick left %d safe cells hidden", hidden)
	}
}

func TestQueuedMineRevealLoses(t *testing.T) {
	s := newForced(3, 3, SweepRing, core.Point{X: 1, Y: 1})
	s.Queue(core.RevealAction(1, 1))
	s.Step()
	if s.Phase() != PhaseLost {
		t.Fatal("a queued mine reveal should end the session on the next tick")
	}
}
