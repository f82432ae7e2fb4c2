package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/rbrander/minesweeper/internal/app"
	"github.com/rbrander/minesweeper/internal/sims/minesweeper"

	"github.com/sirupsen/logrus"
)

func main() {
	games := flag.Int("games", 1000, "boards to generate")
	width := flag.Int("w", 32, "board width in cells")
	height := flag.Int("h", 24, "board height in cells")
	prob := flag.Float64("p", 0.10, "per-cell mine probability")
	seed := flag.Int64("seed", 1, "first seed; boards use consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	mode := flag.String("mode", "ring", "sweep mode (ring, flood)")
	top := flag.Int("top", 5, "slowest boards to list")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := app.NewLogger(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := minesweeper.FromMap(map[string]string{"mode": *mode})
	cfg.Width = *width
	cfg.Height = *height
	cfg.MineProbability = *prob
	cfg.Seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d boards of %dx%d at p=%.3f (%s, %d workers)\n",
		*games, cfg.Width, cfg.Height, cfg.MineProbability, cfg.Mode, *workers)
	start := time.Now()
	results, err := minesweeper.Survey(ctx, cfg, *games, *workers)
	if err != nil {
		logger.WithError(err).Fatal("survey aborted")
	}
	elapsed := time.Since(start)
	sum := minesweeper.Summarize(results)

	logger.WithFields(logrus.Fields{
		"games":   sum.Games,
		"elapsed": elapsed.Round(time.Millisecond),
	}).Info("survey complete")

	fmt.Printf("\nMines: min=%d max=%d mean density=%.4f\n", sum.MinMines, sum.MaxMines, sum.MeanDensity)
	fmt.Printf("Boards without an empty cell: %d\n", sum.NoOpening)
	fmt.Printf("Opening: mean revealed=%.1f%% mean ticks=%.2f max ticks=%d (seed %d)\n",
		sum.MeanOpened*100, sum.MeanTicks, sum.MaxTicks, sum.MaxTicksSeed)

	if *top <= 0 {
		return
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Ticks > results[j].Ticks })
	if len(results) > *top {
		results = results[:*top]
	}
	fmt.Printf("\nSlowest %d openings:\n", len(results))
	for i, r := range results {
		fmt.Printf("%2d) seed=%d ticks=%d opened=%d/%d mines=%d\n", i+1, r.Seed, r.Ticks, r.Opened, r.Cells, r.Mines)
	}
}
