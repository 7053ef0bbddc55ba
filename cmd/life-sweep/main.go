package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"torus-life/internal/sweep"
	"torus-life/pkg/pattern/rle"
)

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 64, "grid height")
	seeds := flag.Int("seeds", 0, "number of random boards to add (seeds 1..n)")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	var scenarios []sweep.Scenario
	for _, path := range flag.Args() {
		block, err := loadPattern(path)
		if err != nil {
			log.Fatalf("load %s: %v", path, err)
		}
		scenarios = append(scenarios, sweep.Scenario{
			Name:  filepath.Base(path),
			W:     *width,
			H:     *height,
			Block: block,
			At:    block.Offset(),
		})
	}
	for i := 1; i <= *seeds; i++ {
		scenarios = append(scenarios, sweep.Scenario{
			Name: fmt.Sprintf("seed-%d", i),
			W:    *width,
			H:    *height,
			Seed: int64(i),
		})
	}
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "usage: life-sweep [flags] [pattern.rle ...]")
		fmt.Fprintln(os.Stderr, "Give at least one pattern file or -seeds n.")
		os.Exit(2)
	}

	fmt.Printf("Running %d scenarios on %dx%d (%d workers, %d steps)\n", len(scenarios), *width, *height, *workers, *steps)

	start := time.Now()
	results, err := sweep.Run(context.Background(), scenarios, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.SliceStable(results, func(i, j int) bool { return results[i].FinalPop > results[j].FinalPop })

	fmt.Printf("\nTop %d results by final population (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		still := "never"
		if res.StillAt >= 0 {
			still = fmt.Sprintf("gen %d", res.StillAt)
		}
		fmt.Printf("%2d) %-20s pop %d -> %d (peak %d) generations=%d still=%s changes=%d\n",
			i+1, res.Name, res.InitialPop, res.FinalPop, res.PeakPop, res.Generations, still, res.TotalChanges)
	}
}

func loadPattern(path string) (*rle.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rle.Read(f)
}
