package minesweeper

import (
	"context"
	"math"

	"github.com/rbrander/minesweeper/internal/core"
	"golang.org/x/sync/errgroup"
)

// OpeningResult records one generated board opened at its first empty cell.
type OpeningResult struct {
	Seed       int64
	Mines      int
	Cells      int
	HasOpening bool
	Opened     int
	// Ticks counts advance ticks that revealed something, including the
	// tick that applied the opening reveal.
	Ticks int
}

// SurveySummary aggregates a batch of OpeningResults.
type SurveySummary struct {
	Games        int
	NoOpening    int
	MinMines     int
	MaxMines     int
	MeanDensity  float64
	MeanOpened   float64
	MeanTicks    float64
	MaxTicks     int
	MaxTicksSeed int64
}

// OpeningRun generates a board from cfg, queues a reveal of the first empty
// cell in row-major order and advances until a tick changes nothing.
func OpeningRun(cfg Config) OpeningResult {
	s := NewState(cfg)
	g := s.Grid()
	res := OpeningResult{Seed: s.Seed(), Mines: g.MineCount(), Cells: g.Size().Area()}

	var start *Cell
	for i := range g.cells {
		if g.cells[i].Kind == KindEmpty {
			start = &g.cells[i]
			break
		}
	}
	if start == nil {
		return res
	}
	res.HasOpening = true
	s.Queue(core.RevealAction(start.X, start.Y))

	limit := g.Size().Area() + 1
	prev := g.rev
	for tick := 0; tick < limit; tick++ {
		s.Advance()
		if g.rev == prev {
			break
		}
		prev = g.rev
		res.Ticks++
	}
	res.Opened = s.Stats().Visible
	return res
}

// Survey runs OpeningRun for games consecutive seeds starting at cfg.Seed,
// using at most workers goroutines. Results are ordered by seed offset.
func Survey(ctx context.Context, cfg Config, games, workers int) ([]OpeningResult, error) {
	if games <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	base := cfg.Seed
	if base == 0 {
		base = 1
	}
	results := make([]OpeningResult, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := cfg
			run.Seed = base + int64(i)
			results[i] = OpeningRun(run)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize folds results into aggregate statistics.
func Summarize(results []OpeningResult) SurveySummary {
	sum := SurveySummary{Games: len(results), MinMines: math.MaxInt}
	if len(results) == 0 {
		sum.MinMines = 0
		return sum
	}
	var density, opened, ticks float64
	opening := 0
	for _, r := range results {
		if r.Mines < sum.MinMines {
			sum.MinMines = r.Mines
		}
		if r.Mines > sum.MaxMines {
			sum.MaxMines = r.Mines
		}
		if r.Cells > 0 {
			density += float64(r.Mines) / float64(r.Cells)
		}
		if !r.HasOpening {
			sum.NoOpening++
			continue
		}
		opening++
		if r.Cells > 0 {
			opened += float64(r.Opened) / float64(r.Cells)
		}
		ticks += float64(r.Ticks)
		if r.Ticks > sum.MaxTicks {
			sum.MaxTicks = r.Ticks
			sum.MaxTicksSeed = r.Seed
		}
	}
	sum.MeanDensity = density / float64(len(results))
	if opening > 0 {
		sum.MeanOpened = opened / float64(opening)
		sum.MeanTicks = ticks / float64(opening)
	}
	return sum
}
