//go:build ebiten

package app

import (
	"image/color"

	"github.com/rbrander/minesweeper/internal/core"
	"github.com/rbrander/minesweeper/internal/render"
	"github.com/rbrander/minesweeper/internal/ui"
	pcore "github.com/rbrander/minesweeper/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var fallbackPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	queue   core.ActionQueue
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	log     logrus.FieldLogger

	cellSize int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board.
func New(sim core.Sim, cfg Config, logger logrus.FieldLogger) *Game {
	size := sim.Size()
	cellSize := cfg.CellSize
	if cellSize <= 0 {
		cellSize = 1
	}
	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cellSize),
		stepper:  core.NewFixedStep(cfg.SweepTPS),
		log:      logger,
		cellSize: cellSize,
		hudWidth: hudWidth,
		seed:     cfg.Seed,
	}
	if q, ok := sim.(core.ActionQueue); ok {
		g.queue = q
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset regenerates the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the expansion on its own clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed, err := pcore.NewSeed()
		if err != nil {
			g.log.WithError(err).Warn("draw seed")
		} else {
			g.Reset(seed)
		}
	}

	if g.hud != nil {
		g.hud.Update(g.boardWidth())
	}
	g.handleMouse()

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleMouse() {
	if g.queue == nil {
		return
	}
	var button MouseButton
	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		button = MouseLeft
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		button = MouseRight
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.boardWidth() || my >= g.boardHeight() {
		return
	}
	act, ok := ActionFor(button, mx, my, g.cellSize)
	if !ok {
		return
	}
	if !g.queue.Queue(act) {
		g.log.WithFields(logrus.Fields{
			"action": act.Kind.String(),
			"x":      act.X,
			"y":      act.Y,
		}).Debug("action refused, one already pending")
	}
}

// Draw renders the board, its glyphs and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := fallbackPalette
	if p, ok := g.sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.cellSize)
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.boardWidth(), g.cellSize)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.hudWidth, g.boardHeight()
}

func (g *Game) boardWidth() int  { return g.sim.Size().W * g.cellSize }
func (g *Game) boardHeight() int { return g.sim.Size().H * g.cellSize }
