package minesweeper

import "github.com/rbrander/minesweeper/internal/core"

// Queue stores a for the next Advance. Only one action may be pending; later
// ones are refused until it has been consumed.
func (s *State) Queue(a core.Action) bool {
	if s.hasPending {
		return false
	}
	switch a.Kind {
	case core.ActionReveal, core.ActionToggleFlag:
	default:
		return false
	}
	s.pending = a
	s.hasPending = true
	return true
}

// Pending reports the queued action, if any.
func (s *State) Pending() (core.Action, bool) { return s.pending, s.hasPending }

// Advance performs one tick: it applies the pending action, if any, and then
// runs one expansion (a full flood in SweepFlood mode). Expansion runs even
// when nothing was queued.
func (s *State) Advance() {
	s.ticks++
	if s.hasPending {
		a := s.pending
		s.hasPending = false
		s.pending = core.Action{}
		switch a.Kind {
		case core.ActionReveal:
			s.reveal(a.X, a.Y)
		case core.ActionToggleFlag:
			s.ToggleFlag(a.X, a.Y)
		}
	}
	s.expand()
}

// Step advances the game by one tick for the app loop.
func (s *State) Step() { s.Advance() }
