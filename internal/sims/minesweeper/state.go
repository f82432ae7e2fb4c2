package minesweeper

import (
	"time"

	"github.com/rbrander/minesweeper/internal/core"
	pcore "github.com/rbrander/minesweeper/pkg/core"
)

// Phase is the session state. Lost is terminal.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseLost
)

func (p Phase) String() string {
	if p == PhaseLost {
		return "lost"
	}
	return "playing"
}

// EventKind identifies a notification emitted to an Observer.
type EventKind uint8

const (
	EventReset EventKind = iota + 1
	EventLost
)

// Event describes a session transition. X and Y are set for EventLost;
// Seed and Mines for EventReset.
type Event struct {
	Kind  EventKind
	X, Y  int
	Seed  int64
	Mines int
}

// Observer receives session transitions. It runs synchronously on the
// goroutine that owns the State.
type Observer func(Event)

// Stats summarises the board for display. It derives no win state.
type Stats struct {
	Mines      int
	Flags      int
	Visible    int
	HiddenSafe int
	Ticks      int
}

// State owns one Grid plus the running flag and the single-slot action
// queue. It is not safe for concurrent use; one goroutine owns it.
type State struct {
	cfg   Config
	name  string
	seed  int64
	grid  *Grid
	phase Phase

	pending    core.Action
	hasPending bool
	ticks      int

	display    *core.ByteGrid
	displayRev uint64
	displayOK  bool

	observer Observer
}

// NewState builds a session and generates its first board.
func NewState(cfg Config) *State {
	s := newState(cfg)
	s.Reset(0)
	return s
}

// NewStateWithGrid wraps an already generated grid, for forced layouts.
func NewStateWithGrid(cfg Config, g *Grid) *State {
	s := newState(cfg)
	s.install(g, cfg.Seed)
	return s
}

func newState(cfg Config) *State {
	s := &State{cfg: cfg, name: "classic"}
	if cfg.Mode == SweepFlood {
		s.name = "instant"
	}
	return s
}

// SetObserver installs fn to receive session transitions. Nil disables it.
func (s *State) SetObserver(fn Observer) { s.observer = fn }

// Name returns the registry identifier.
func (s *State) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *State) Size() core.Size { return s.grid.Size() }

// Grid exposes the board for read-only queries.
func (s *State) Grid() *Grid { return s.grid }

// Phase reports the session state.
func (s *State) Phase() Phase { return s.phase }

// Running reports whether no mine has been revealed yet.
func (s *State) Running() bool { return s.phase == PhasePlaying }

// Seed returns the seed the current board was generated from.
func (s *State) Seed() int64 { return s.seed }

// Mode returns the configured sweep mode.
func (s *State) Mode() SweepMode { return s.cfg.Mode }

// Reset generates a new board and returns to PhasePlaying. A zero seed
// falls back to the configured seed, then to a freshly drawn one.
func (s *State) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if seed == 0 {
		drawn, err := pcore.NewSeed()
		if err != nil {
			drawn = time.Now().UnixNano()
		}
		seed = drawn
	}
	rng := pcore.NewRNG(seed)
	s.install(New(s.cfg.Width, s.cfg.Height, s.cfg.MineProbability, rng), seed)
}

func (s *State) install(g *Grid, seed int64) {
	s.grid = g
	s.seed = seed
	s.phase = PhasePlaying
	s.hasPending = false
	s.pending = core.Action{}
	s.ticks = 0
	size := g.Size()
	s.display = core.NewByteGrid(size.W, size.H)
	s.displayOK = false
	s.emit(Event{Kind: EventReset, Seed: seed, Mines: g.MineCount()})
}

// Reveal opens (x, y) and then runs one expansion (a full flood in
// SweepFlood mode). It is a no-op out of bounds, after a loss, or on a cell
// that is already visible or flagged. Revealing a mine shows every mine and
// ends the session.
func (s *State) Reveal(x, y int) {
	if s.reveal(x, y) {
		s.expand()
	}
}

// reveal applies the single-cell part of Reveal and reports whether a safe
// cell was opened.
func (s *State) reveal(x, y int) bool {
	if s.phase == PhaseLost {
		return false
	}
	c := s.grid.at(x, y)
	if c == nil || c.Visible || c.Flagged {
		return false
	}
	s.grid.setVisible(x, y)
	if c.Kind == KindMine {
		s.grid.revealMines()
		s.phase = PhaseLost
		s.emit(Event{Kind: EventLost, X: x, Y: y})
		return false
	}
	return true
}

// ToggleFlag flips the flag on a hidden cell. It is allowed after a loss.
func (s *State) ToggleFlag(x, y int) {
	s.grid.toggleFlag(x, y)
}

// Stats counts mines, flags and visibility across the board.
func (s *State) Stats() Stats {
	st := Stats{Mines: s.grid.MineCount(), Ticks: s.ticks}
	for _, c := range s.grid.cells {
		if c.Visible {
			st.Visible++
		} else if c.Flagged {
			st.Flags++
		}
		if !c.Visible && c.Kind != KindMine {
			st.HiddenSafe++
		}
	}
	return st
}

func (s *State) emit(e Event) {
	if s.observer != nil {
		s.observer(e)
	}
}

func init() {
	core.Register("classic", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Mode = SweepRing
		return NewState(c)
	})
	core.Register("instant", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Mode = SweepFlood
		return NewState(c)
	})
}
