// Package imageio imports black and white images as pasteable cell blocks.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"

	"torus-life/pkg/core"
)

// threshold is the gray level at or above which a pixel counts as alive.
const threshold = 0x80

// Mask is a block of cell states taken from an image, one cell per pixel.
type Mask struct {
	w, h  int
	cells []core.State
}

// FromImage thresholds img into a mask. Bright pixels are alive.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := &Mask{w: b.Dx(), h: b.Dy(), cells: make([]core.State, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y >= threshold {
				m.cells[y*m.w+x] = core.Alive
			}
		}
	}
	return m
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*Mask, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("imageio: empty %s image", format)
	}
	return FromImage(img), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Size returns the mask dimensions.
func (m *Mask) Size() core.Size { return core.Size{W: m.w, H: m.h} }

// At returns the cell state at (x, y).
func (m *Mask) At(x, y int) core.State {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return core.Dead
	}
	return m.cells[y*m.w+x]
}
