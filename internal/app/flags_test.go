package app

import (
	"errors"
	"flag"
	"io"
	"strconv"
	"testing"
)

func TestConfigDefaultsDeriveGrid(t *testing.T) {
	cfg := NewConfig()
	if cfg.Columns() != 32 || cfg.Rows() != 24 {
		t.Fatalf("expected 32x24 grid, got %dx%d", cfg.Columns(), cfg.Rows())
	}
	cfg.Width, cfg.CellSize = 5, 20
	if cfg.Columns() != 1 {
		t.Fatalf("surface narrower than a cell should still give one column, got %d", cfg.Columns())
	}
}

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("MINESWEEPER_GAME", "instant")
	t.Setenv("MINESWEEPER_CELL_SIZE", "10")
	t.Setenv("MINESWEEPER_SEED", "99")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "7"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if cfg.Game != "instant" {
		t.Fatalf("env should override default game, got %q", cfg.Game)
	}
	if cfg.CellSize != 10 || cfg.Columns() != 64 {
		t.Fatalf("env cell size not applied: cell=%d cols=%d", cfg.CellSize, cfg.Columns())
	}
	if cfg.Seed != 7 {
		t.Fatalf("flag should override env seed, got %d", cfg.Seed)
	}
	if cfg.TPS != 60 {
		t.Fatalf("unset values should keep defaults, got tps=%d", cfg.TPS)
	}
}

func TestLoadEnvWrapsParseErrors(t *testing.T) {
	t.Setenv("MINESWEEPER_TPS", "fast")
	cfg := NewConfig()
	err := cfg.LoadEnv()
	if err == nil {
		t.Fatalf("expected error for non-numeric TPS")
	}
	if errors.Unwrap(err) == nil {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSimConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 42
	cfg.MineProbability = 0.25
	m := cfg.SimConfig()
	if m["w"] != "32" || m["h"] != "24" {
		t.Fatalf("unexpected dimensions %q x %q", m["w"], m["h"])
	}
	if m["seed"] != strconv.Itoa(42) {
		t.Fatalf("unexpected seed %q", m["seed"])
	}
	if m["mine_probability"] != "0.25" {
		t.Fatalf("unexpected probability %q", m["mine_probability"])
	}
}
