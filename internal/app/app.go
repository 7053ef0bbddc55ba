//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the HUD drawn right of the grid.
const PanelWidth = 180

var (
	cellColor       = color.RGBA{R: 222, G: 235, B: 40, A: 255}
	backgroundColor = color.RGBA{R: 92, G: 36, B: 115, A: 255}
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	reseed  func(seed int64)
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. reseed rebuilds the
// starting board; it is called on R and S.
func New(sim core.Sim, reseed func(seed int64), cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		reseed:  reseed,
		painter: render.NewGridPainter(size.W, size.H, cellColor, backgroundColor),
		hud:     ui.NewHUD(sim, PanelWidth),
		scale:   cfg.Scale,
		tps:     cfg.TPS,
		seed:    cfg.Seed,
	}
	g.painter.Fill(sim.Cells())
	return g
}

// Reset rebuilds the starting board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.reseed(seed)
	g.painter.Fill(g.sim.Cells())
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setTPS(core.AdjustTPS(g.tps, true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setTPS(core.AdjustTPS(g.tps, false))
	}

	if !g.paused || g.tickOnce {
		g.painter.Apply(g.sim.Step())
		g.tickOnce = false
	}
	return nil
}

func (g *Game) setTPS(tps int) {
	g.tps = tps
	ebiten.SetTPS(tps)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale, ui.Status{
		MeasuredTPS: ebiten.ActualTPS(),
		LimitTPS:    g.tps,
		Paused:      g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
