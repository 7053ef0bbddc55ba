//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Draw paints the panel at horizontal offset x on screen.
func (h *HUD) Draw(screen *ebiten.Image, x, height int, st Status) {
	if h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range StatusLines(h.sim, st) {
		text.Draw(h.panel, line.Text, face, panelPadding, y, lineColor(line.Kind))
		y += lineHeight
	}

	y = height - panelPadding - (len(Instructions)-1)*lineHeight
	for _, help := range Instructions {
		text.Draw(h.panel, help, face, panelPadding, y, lineColor(LineHelp))
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	screen.DrawImage(h.panel, op)
}

func lineColor(kind LineKind) color.Color {
	switch kind {
	case LineTitle:
		return color.RGBA{R: 20, G: 20, B: 30, A: 255}
	case LineNotice, LineHelp:
		return color.RGBA{R: 255, G: 60, B: 0, A: 255}
	default:
		return color.Black
	}
}

const (
	panelPadding   = 8
	lineHeight     = 18
	headerBaseline = 12
)
