// Package rle decodes run-length encoded Life patterns.
//
// A pattern file carries optional "#" metadata lines, one header line of the
// form "x = 3, y = 3, rule = B3/S23", and a body of run-length tokens:
//
//	#X 5
//	#Y 7
//	x = 3, y = 3
//	bo$2bo$3o!
//
// "#X" and "#Y" give a suggested placement offset. In the body, "b" is a dead
// cell, "o" a live cell, "$" ends a row and "!" ends the pattern. Any tag may
// be preceded by a decimal repeat count.
package rle

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"torus-life/pkg/core"
)

var (
	// ErrMalformedHeader is returned when no usable "x = W, y = H" line
	// precedes the pattern body.
	ErrMalformedHeader = errors.New("rle: malformed header")
	// ErrMalformedRun is returned when a run count is not followed by a tag.
	ErrMalformedRun = errors.New("rle: malformed run")
)

const (
	// maxRun caps a single run count so accumulation cannot overflow.
	maxRun = 1 << 30
	// maxCells bounds the area a header may declare.
	maxCells = 1 << 26
)

// Block is a decoded rectangle of cell states.
type Block struct {
	W, H    int
	OffsetX int
	OffsetY int
	cells   []core.State
}

func newBlock(w, h int) *Block {
	return &Block{W: w, H: h, cells: make([]core.State, w*h)}
}

// Size returns the block dimensions declared by the header.
func (b *Block) Size() core.Size { return core.Size{W: b.W, H: b.H} }

// At returns the state at local coordinate (x, y). Coordinates outside the
// block read as dead.
func (b *Block) At(x, y int) core.State {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return core.Dead
	}
	return b.cells[y*b.W+x]
}

// Offset returns the placement hint from the "#X" and "#Y" lines.
func (b *Block) Offset() core.Point { return core.Point{X: b.OffsetX, Y: b.OffsetY} }

// fill writes n cells of state s starting at (x, y), dropping anything past
// the right edge or below the last row.
func (b *Block) fill(x, y, n int, s core.State) {
	if y < 0 || y >= b.H || x >= b.W {
		return
	}
	end := min(x+n, b.W)
	row := b.cells[y*b.W : (y+1)*b.W]
	for i := x; i < end; i++ {
		row[i] = s
	}
}

// Read consumes r and decodes its contents.
func Read(r io.Reader) (*Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("rle: read pattern: %w", err)
	}
	return Decode(string(data))
}

// decoder carries the state of a single Decode call across lines.
type decoder struct {
	block   *Block
	offX    int
	offY    int
	x, y    int
	run     int
	pending bool
	done    bool
}

// Decode parses an RLE pattern. It is a pure function of text.
func Decode(text string) (*Block, error) {
	d := &decoder{}
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line[0] == '#':
			d.meta(line)
		case line[0] == 'x':
			if d.block != nil {
				continue
			}
			w, h, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			d.block = newBlock(w, h)
		default:
			if d.block == nil {
				return nil, fmt.Errorf("%w: line %d: body before header", ErrMalformedHeader, lineNo+1)
			}
			if err := d.body(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
		}
		if d.done {
			break
		}
	}
	if d.block == nil {
		return nil, fmt.Errorf("%w: no header line", ErrMalformedHeader)
	}
	if d.pending {
		return nil, fmt.Errorf("%w: count %d at end of input", ErrMalformedRun, d.run)
	}
	d.block.OffsetX = d.offX
	d.block.OffsetY = d.offY
	return d.block, nil
}

// meta handles "#X <int>" and "#Y <int>"; other comment lines are ignored.
func (d *decoder) meta(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return
	}
	switch fields[0] {
	case "#X":
		d.offX = v
	case "#Y":
		d.offY = v
	}
}

// body scans one line of run-length tokens, continuing from the cursor left
// by the previous line.
func (d *decoder) body(line string) error {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			if !d.pending {
				d.run = 0
				d.pending = true
			}
			if d.run < maxRun/10 {
				d.run = d.run*10 + int(c-'0')
			} else {
				d.run = maxRun
			}
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}

		n := 1
		if d.pending {
			n = d.run
		}
		switch c {
		case 'b':
			d.block.fill(d.x, d.y, n, core.Dead)
			d.x += n
		case 'o':
			d.block.fill(d.x, d.y, n, core.Alive)
			d.x += n
		case '$':
			d.y += n
			d.x = 0
		case '!':
			d.pending = false
			d.done = true
			return nil
		default:
			if d.pending {
				return fmt.Errorf("%w: count %d followed by %q", ErrMalformedRun, d.run, c)
			}
			continue
		}
		d.pending = false
	}
	return nil
}

// parseHeader reads the width and height from "x = W, y = H[, ...]".
func parseHeader(line string) (int, int, error) {
	w, h := -1, -1
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return 0, 0, fmt.Errorf("%w: %s = %q", ErrMalformedHeader, key, value)
			}
			if key == "x" {
				w = n
			} else {
				h = n
			}
		}
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("%w: %q lacks x or y", ErrMalformedHeader, line)
	}
	if w > maxCells/h {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrMalformedHeader, w, h, maxCells)
	}
	return w, h, nil
}
