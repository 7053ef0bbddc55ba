//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a binary grid.
type GridPainter struct {
	pixels *PixelBuffer
	img    *ebiten.Image
	dirty  bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{
		pixels: NewPixelBuffer(w, h, on, off),
		img:    ebiten.NewImage(w, h),
		dirty:  true,
	}
}

// Fill repaints the whole grid.
func (gp *GridPainter) Fill(cells []uint8) {
	gp.pixels.Fill(cells)
	gp.dirty = true
}

// Apply repaints only the cells reported by a step.
func (gp *GridPainter) Apply(changes []core.Point) {
	if len(changes) == 0 {
		return
	}
	gp.pixels.Toggle(changes)
	gp.dirty = true
}

// Draw uploads pending changes and draws the grid scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.dirty {
		gp.img.WritePixels(gp.pixels.Pix())
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
