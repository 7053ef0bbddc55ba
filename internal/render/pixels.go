package render

import (
	"image/color"

	"torus-life/pkg/core"
)

// PixelBuffer mirrors a binary grid as RGBA pixels, one pixel per cell. It
// tracks the state it last painted so the change feed can flip pixels
// without reading the grid again.
type PixelBuffer struct {
	w, h  int
	pix   []byte
	state []uint8
	on    [4]byte
	off   [4]byte
}

// NewPixelBuffer allocates a buffer for a w*h grid.
func NewPixelBuffer(w, h int, on, off color.Color) *PixelBuffer {
	pb := &PixelBuffer{
		w:     w,
		h:     h,
		pix:   make([]byte, 4*w*h),
		state: make([]uint8, w*h),
		on:    rgba(on),
		off:   rgba(off),
	}
	for i := range pb.state {
		pb.paint(i)
	}
	return pb
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Pix returns the RGBA bytes in row-major order.
func (pb *PixelBuffer) Pix() []byte { return pb.pix }

// Fill repaints every pixel from binary cell data (0/1).
func (pb *PixelBuffer) Fill(cells []uint8) {
	if len(cells) != len(pb.state) {
		return
	}
	copy(pb.state, cells)
	for i := range pb.state {
		pb.paint(i)
	}
}

// Toggle flips the pixels at the given coordinates. Points outside the
// buffer are ignored.
func (pb *PixelBuffer) Toggle(points []core.Point) {
	for _, p := range points {
		if p.X < 0 || p.X >= pb.w || p.Y < 0 || p.Y >= pb.h {
			continue
		}
		i := p.Y*pb.w + p.X
		pb.state[i] ^= 1
		pb.paint(i)
	}
}

func (pb *PixelBuffer) paint(i int) {
	col := pb.off
	if pb.state[i] != 0 {
		col = pb.on
	}
	copy(pb.pix[i*4:i*4+4], col[:])
}
