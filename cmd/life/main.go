//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, seeder, err := app.Setup(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	game := app.New(grid, seeder.Seed, cfg)
	size := grid.Size()

	ebiten.SetWindowTitle("The Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
