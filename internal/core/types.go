package core

// Size describes the dimensions of a game grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the contract the app loop drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ActionKind enumerates the discrete user intents a Sim may accept.
type ActionKind uint8

const (
	// ActionReveal is the primary-button intent.
	ActionReveal ActionKind = iota + 1
	// ActionToggleFlag is the secondary-button intent.
	ActionToggleFlag
)

func (k ActionKind) String() string {
	switch k {
	case ActionReveal:
		return "reveal"
	case ActionToggleFlag:
		return "toggle-flag"
	default:
		return "unknown"
	}
}

// Action is a user intent carrying already-translated grid coordinates.
type Action struct {
	Kind ActionKind
	X, Y int
}

// RevealAction builds a reveal intent for (x, y).
func RevealAction(x, y int) Action { return Action{Kind: ActionReveal, X: x, Y: y} }

// ToggleFlagAction builds a flag-toggle intent for (x, y).
func ToggleFlagAction(x, y int) Action { return Action{Kind: ActionToggleFlag, X: x, Y: y} }

// ActionQueue is implemented by sims that consume user intents on their next
// Step. Queue reports whether the action was accepted.
type ActionQueue interface {
	Queue(a Action) bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
