//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/rbrander/minesweeper/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSession(&cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("start game")
	}
	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("Minesweeper - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.CellSize+cfg.HUDWidth, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
