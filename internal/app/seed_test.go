package app

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/pattern/rle"
	"torus-life/pkg/sims/life"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func liveCells(t *testing.T, l *life.Life) []core.Point {
	t.Helper()
	var out []core.Point
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if s, _ := l.Get(x, y); s == core.Alive {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}

func TestBindFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "80", "-h", "40", "-tps", "15", "-pattern", "glider.rle", "-x", "3"}); err != nil {
		t.Fatal(err)
	}
	if cfg.W != 80 || cfg.H != 40 || cfg.TPS != 15 || cfg.Pattern != "glider.rle" || cfg.X != 3 || cfg.Y != -1 {
		t.Fatalf("unexpected config %+v", *cfg)
	}
}

func TestSetupPatternUsesOffsets(t *testing.T) {
	cfg := NewConfig()
	cfg.W, cfg.H = 10, 10
	cfg.Pattern = writeFile(t, "glider.rle", "#N Glider\n#X 4\n#Y 6\nx = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n")

	grid, seeder, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Point{{X: 5, Y: 6}, {X: 6, Y: 7}, {X: 4, Y: 8}, {X: 5, Y: 8}, {X: 6, Y: 8}}
	if got := liveCells(t, grid); !slices.Equal(got, want) {
		t.Fatalf("live=%v, expected %v", got, want)
	}

	grid.Step()
	seeder.Seed(123)
	if got := liveCells(t, grid); !slices.Equal(got, want) {
		t.Fatalf("reseeding did not restore the pattern: %v", got)
	}
	if grid.Generation() != 0 {
		t.Fatalf("generation=%d after reseed", grid.Generation())
	}
}

func TestSetupPatternOverride(t *testing.T) {
	cfg := NewConfig()
	cfg.W, cfg.H = 4, 4
	cfg.Pattern = writeFile(t, "block.rle", "#X 9\n#Y 9\nx = 2, y = 2\n2o$2o!")
	cfg.X, cfg.Y = 3, 0

	grid, _, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// The right column is clipped at the grid edge.
	want := []core.Point{{X: 3, Y: 0}, {X: 3, Y: 1}}
	if got := liveCells(t, grid); !slices.Equal(got, want) {
		t.Fatalf("live=%v, expected %v", got, want)
	}
}

func TestSetupImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 0, color.Gray{Y: 255})
	path := filepath.Join(t.TempDir(), "board.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := NewConfig()
	cfg.W, cfg.H = 3, 3
	cfg.Image = path
	grid, _, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := liveCells(t, grid); !slices.Equal(got, []core.Point{{X: 1, Y: 0}}) {
		t.Fatalf("live=%v", got)
	}
}

func TestSetupRandomIsReproducible(t *testing.T) {
	cfg := NewConfig()
	cfg.W, cfg.H = 12, 12
	a, _, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different random boards")
	}
}

func TestSetupErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.W = 0
	if _, _, err := Setup(cfg); !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("err=%v, expected ErrInvalidDimension", err)
	}

	cfg = NewConfig()
	cfg.Pattern = writeFile(t, "bad.rle", "bo$2bo$3o!")
	if _, _, err := Setup(cfg); !errors.Is(err, rle.ErrMalformedHeader) {
		t.Fatalf("err=%v, expected ErrMalformedHeader", err)
	}

	cfg = NewConfig()
	cfg.Pattern = "a.rle"
	cfg.Image = "b.png"
	if _, _, err := Setup(cfg); err == nil {
		t.Fatal("expected error when both -pattern and -image are set")
	}

	cfg = NewConfig()
	cfg.Pattern = filepath.Join(t.TempDir(), "missing.rle")
	if _, _, err := Setup(cfg); err == nil {
		t.Fatal("expected error for a missing pattern file")
	}
}
