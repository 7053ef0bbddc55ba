package life

import (
	"errors"
	"fmt"
	"strconv"

	"torus-life/pkg/core"
)

var (
	// ErrInvalidDimension is returned when a grid is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrOutOfBounds is returned by single-cell access outside the grid.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrInvalidState is returned when a cell is set to neither Dead nor Alive.
	ErrInvalidState = errors.New("life: invalid cell state")
)

// neighborOffsets lists the eight Moore neighbors in scan order.
var neighborOffsets = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Block is a rectangle of cell states that can be pasted onto a grid.
type Block interface {
	Size() core.Size
	At(x, y int) core.State
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h       int
	cells      *core.ByteGrid
	counts     *core.ByteGrid
	generation int
}

// New returns an all-dead Life grid with the provided dimensions.
func New(w, h int) (*Life, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Life{
		w:      w,
		h:      h,
		cells:  core.NewByteGrid(w, h),
		counts: core.NewByteGrid(w, h),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells returns a copy of the current grid values.
func (l *Life) Cells() []uint8 { return l.cells.Snapshot() }

// Generation reports how many updates have completed.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cells.Count() }

// Set changes a single cell. It does not wrap.
func (l *Life) Set(x, y int, s core.State) error {
	if !l.cells.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, l.w, l.h)
	}
	if s != core.Dead && s != core.Alive {
		return fmt.Errorf("%w: %d", ErrInvalidState, s)
	}
	l.cells.Set(x, y, uint8(s))
	return nil
}

// Get reads a single cell. It does not wrap.
func (l *Life) Get(x, y int) (core.State, error) {
	if !l.cells.InBounds(x, y) {
		return core.Dead, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, l.w, l.h)
	}
	return core.State(l.cells.At(x, y)), nil
}

// Paste copies b onto the grid with its top-left corner at (x, y). Cells that
// land outside the grid are clipped. Any non-dead block state pastes as alive.
func (l *Life) Paste(b Block, x, y int) {
	size := b.Size()
	for by := 0; by < size.H; by++ {
		dy := y + by
		if dy < 0 || dy >= l.h {
			continue
		}
		for bx := 0; bx < size.W; bx++ {
			dx := x + bx
			if dx < 0 || dx >= l.w {
				continue
			}
			s := core.Alive
			if b.At(bx, by) == core.Dead {
				s = core.Dead
			}
			l.cells.Set(dx, dy, uint8(s))
		}
	}
}

// Clear kills every cell and rewinds the generation counter.
func (l *Life) Clear() {
	l.cells.Clear()
	l.generation = 0
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	l.Clear()
	buf := make([]uint8, l.w*l.h)
	core.FillBinary(rng, buf)
	for i, v := range buf {
		l.cells.Set(i%l.w, i/l.w, v)
	}
}

// countNeighbors returns the number of live cells around (x, y) on the torus.
func (l *Life) countNeighbors(x, y int) uint8 {
	var n uint8
	for _, off := range neighborOffsets {
		nx, ny := l.cells.Wrap(x+off.X, y+off.Y)
		n += l.cells.At(nx, ny)
	}
	return n
}

// Step advances the simulation by one generation and returns the coordinates
// whose state changed, in row-major order. All neighbor counts are captured
// before any cell is rewritten.
func (l *Life) Step() []core.Point {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.counts.Set(x, y, l.countNeighbors(x, y))
		}
	}

	changed := []core.Point{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := l.counts.At(x, y)
			alive := l.cells.At(x, y) == uint8(core.Alive)
			next := core.Dead
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next = core.Alive
			}
			if uint8(next) != l.cells.At(x, y) {
				l.cells.Set(x, y, uint8(next))
				changed = append(changed, core.Point{X: x, Y: y})
			}
		}
	}
	l.generation++
	return changed
}

// Parameters reports the grid figures shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					intParam("w", "Width", l.w),
					intParam("h", "Height", l.h),
				},
			},
			{
				Name: "State",
				Params: []core.Parameter{
					intParam("generation", "Generation", l.generation),
					intParam("population", "Population", l.Population()),
				},
			},
		},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}
