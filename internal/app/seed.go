package app

import (
	"errors"
	"fmt"
	"os"

	"torus-life/internal/imageio"
	"torus-life/pkg/core"
	"torus-life/pkg/pattern/rle"
	"torus-life/pkg/sims/life"
)

// Seeder rebuilds a grid's starting board. Without a pattern or image it
// falls back to a random board drawn from the seed.
type Seeder struct {
	grid  *life.Life
	block life.Block
	at    core.Point
}

// NewSeeder loads the pattern or image named by cfg, if any.
func NewSeeder(cfg *Config, grid *life.Life) (*Seeder, error) {
	s := &Seeder{grid: grid}
	switch {
	case cfg.Pattern != "" && cfg.Image != "":
		return nil, errors.New("app: -pattern and -image are mutually exclusive")
	case cfg.Pattern != "":
		f, err := os.Open(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("app: open pattern: %w", err)
		}
		defer f.Close()
		block, err := rle.Read(f)
		if err != nil {
			return nil, fmt.Errorf("app: %s: %w", cfg.Pattern, err)
		}
		s.block = block
		s.at = block.Offset()
	case cfg.Image != "":
		mask, err := imageio.Load(cfg.Image)
		if err != nil {
			return nil, err
		}
		s.block = mask
	}
	if cfg.X >= 0 {
		s.at.X = cfg.X
	}
	if cfg.Y >= 0 {
		s.at.Y = cfg.Y
	}
	return s, nil
}

// Seed rebuilds the board. A loaded pattern ignores the seed.
func (s *Seeder) Seed(seed int64) {
	if s.block == nil {
		s.grid.Reset(seed)
		return
	}
	s.grid.Clear()
	s.grid.Paste(s.block, s.at.X, s.at.Y)
}

// Setup builds the grid described by cfg and seeds it.
func Setup(cfg *Config) (*life.Life, *Seeder, error) {
	grid, err := life.New(cfg.W, cfg.H)
	if err != nil {
		return nil, nil, err
	}
	seeder, err := NewSeeder(cfg, grid)
	if err != nil {
		return nil, nil, err
	}
	seeder.Seed(cfg.Seed)
	return grid, seeder, nil
}
