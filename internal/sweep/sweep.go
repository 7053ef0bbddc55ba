// Package sweep runs many independent grids side by side and summarises how
// each one evolves.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

// Scenario describes one grid to run. A nil Block means a random board drawn
// from Seed.
type Scenario struct {
	Name  string
	W, H  int
	Block life.Block
	At    core.Point
	Seed  int64
}

// Result summarises a finished scenario.
type Result struct {
	Name         string
	Generations  int
	InitialPop   int
	FinalPop     int
	PeakPop      int
	StillAt      int // first generation with no changes, -1 if never
	TotalChanges int
}

// Run simulates every scenario for up to steps generations using at most
// workers goroutines. Results keep the order of scenarios. A scenario stops
// early once its board stops changing.
func Run(ctx context.Context, scenarios []Scenario, steps, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc, steps)
			if err != nil {
				return fmt.Errorf("sweep: %s: %w", sc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, sc Scenario, steps int) (Result, error) {
	grid, err := life.New(sc.W, sc.H)
	if err != nil {
		return Result{}, err
	}
	if sc.Block == nil {
		grid.Reset(sc.Seed)
	} else {
		grid.Paste(sc.Block, sc.At.X, sc.At.Y)
	}

	res := Result{Name: sc.Name, StillAt: -1}
	res.InitialPop = grid.Population()
	res.PeakPop = res.InitialPop
	for i := 0; i < steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		changes := grid.Step()
		res.TotalChanges += len(changes)
		if pop := grid.Population(); pop > res.PeakPop {
			res.PeakPop = pop
		}
		if len(changes) == 0 {
			res.StillAt = grid.Generation()
			break
		}
	}
	res.Generations = grid.Generation()
	res.FinalPop = grid.Population()
	return res, nil
}
