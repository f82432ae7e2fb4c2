package minesweeper

import "strconv"

// SweepMode selects how much flood-fill expansion runs per reveal or tick.
type SweepMode uint8

const (
	// SweepRing runs a single in-place expansion pass, so a large empty region
	// opens up over several ticks.
	SweepRing SweepMode = iota
	// SweepFlood repeats the pass until nothing changes, so a region opens
	// completely within one reveal or tick.
	SweepFlood
)

func (m SweepMode) String() string {
	if m == SweepFlood {
		return "flood"
	}
	return "ring"
}

// Config controls board generation.
type Config struct {
	Width           int
	Height          int
	MineProbability float64

	// Seed is used when Reset is called with 0. A zero Seed draws a fresh
	// seed on every such reset.
	Seed int64

	Mode SweepMode
}

// DefaultConfig returns a 32x24 board (a 640x480 surface in 20px cells) with
// one mine per ten cells on average.
func DefaultConfig() Config {
	return Config{
		Width:           32,
		Height:          24,
		MineProbability: 0.10,
		Mode:            SweepRing,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["mine_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.MineProbability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		switch v {
		case "ring":
			c.Mode = SweepRing
		case "flood":
			c.Mode = SweepFlood
		}
	}
	return c
}
