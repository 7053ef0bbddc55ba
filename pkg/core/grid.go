package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Callers must pass
// positive values.
func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid without wrapping.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value stored at (x, y), which must be in bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y), which must be in bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Snapshot returns a copy of the backing values.
func (g *ByteGrid) Snapshot() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}
