package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable LoadEnv reads.
const EnvPrefix = "MINESWEEPER_"

// Config captures command-line and environment settings for the viewer.
// Width and Height are the board surface in pixels; the grid has
// Width/CellSize columns and Height/CellSize rows.
type Config struct {
	Game            string  `env:"GAME"`
	Width           int     `env:"WIDTH"`
	Height          int     `env:"HEIGHT"`
	CellSize        int     `env:"CELL_SIZE"`
	TPS             int     `env:"TPS"`
	SweepTPS        int     `env:"SWEEP_TPS"`
	Seed            int64   `env:"SEED"`
	MineProbability float64 `env:"MINE_PROBABILITY"`
	HUDWidth        int     `env:"HUD_WIDTH"`
	LogLevel        string  `env:"LOG_LEVEL"`
}

// NewConfig returns the defaults: a 640x480 board in 20px cells.
func NewConfig() Config {
	return Config{
		Game:            "classic",
		Width:           640,
		Height:          480,
		CellSize:        20,
		TPS:             60,
		SweepTPS:        60,
		MineProbability: 0.10,
		HUDWidth:        200,
		LogLevel:        "info",
	}
}

// LoadEnv overlays MINESWEEPER_* environment variables onto c. Unset
// variables leave the current values alone.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind registers flags on fs that write into c. Call after LoadEnv so the
// environment values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Game, "game", c.Game, "game to run (classic, instant)")
	fs.IntVar(&c.Width, "w", c.Width, "board width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "board height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SweepTPS, "sweep-tps", c.SweepTPS, "expansion ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed (0 draws a random one)")
	fs.Float64Var(&c.MineProbability, "p", c.MineProbability, "per-cell mine probability")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Columns returns the grid width in cells.
func (c Config) Columns() int { return cells(c.Width, c.CellSize) }

// Rows returns the grid height in cells.
func (c Config) Rows() int { return cells(c.Height, c.CellSize) }

// SimConfig renders the board settings as the string map the game factories
// accept.
func (c Config) SimConfig() map[string]string {
	return map[string]string{
		"w":                strconv.Itoa(c.Columns()),
		"h":                strconv.Itoa(c.Rows()),
		"mine_probability": strconv.FormatFloat(c.MineProbability, 'f', -1, 64),
		"seed":             strconv.FormatInt(c.Seed, 10),
	}
}

func cells(px, cellSize int) int {
	if cellSize <= 0 {
		cellSize = 1
	}
	n := px / cellSize
	if n < 1 {
		n = 1
	}
	return n
}
