package app

import (
	"fmt"

	"github.com/rbrander/minesweeper/internal/core"
	"github.com/rbrander/minesweeper/internal/sims/minesweeper"
	pcore "github.com/rbrander/minesweeper/pkg/core"

	"github.com/sirupsen/logrus"
)

// NewSession looks up the configured game and generates its first board. A
// zero seed in cfg is replaced by a drawn one, so the board can be replayed
// with R. The first board is logged once; later resets go through the
// observer.
func NewSession(cfg *Config, logger logrus.FieldLogger) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Game]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", cfg.Game)
	}
	if cfg.Seed == 0 {
		seed, err := pcore.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("draw seed: %w", err)
		}
		cfg.Seed = seed
	}

	sim := factory(cfg.SimConfig())
	fields := logrus.Fields{
		"game": sim.Name(),
		"cols": sim.Size().W,
		"rows": sim.Size().H,
		"seed": cfg.Seed,
	}
	if st, ok := sim.(*minesweeper.State); ok {
		fields["mines"] = st.Grid().MineCount()
		st.SetObserver(LogEvents(logger))
	}
	logger.WithFields(fields).Info("board generated")
	return sim, nil
}
