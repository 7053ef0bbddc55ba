package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, seeder, err := app.Setup(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := term.New(screen, grid, seeder.Seed, cfg.TPS, cfg.Seed)
	err = view.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
