package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"torus-life/pkg/core"
)

func checker() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(2, 0, color.Gray{Y: 200})
	img.SetGray(1, 1, color.Gray{Y: 0x80})
	img.SetGray(2, 1, color.Gray{Y: 0x7f})
	return img
}

func assertChecker(t *testing.T, m *Mask) {
	t.Helper()
	if m.Size() != (core.Size{W: 3, H: 2}) {
		t.Fatalf("size=%v, expected 3x2", m.Size())
	}
	want := map[core.Point]bool{{X: 0, Y: 0}: true, {X: 2, Y: 0}: true, {X: 1, Y: 1}: true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			alive := m.At(x, y) == core.Alive
			if alive != want[core.Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) alive=%v", x, y, alive)
			}
		}
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}
	m, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertChecker(t, m)
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}
	m, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertChecker(t, m)
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 12, 21))
	img.SetGray(11, 20, color.Gray{Y: 255})
	m := FromImage(img)
	if m.At(0, 0) != core.Dead || m.At(1, 0) != core.Alive {
		t.Fatal("mask must be relative to the image's bounds")
	}
	if m.At(5, 5) != core.Dead {
		t.Fatal("outside reads must be dead")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checker()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	assertChecker(t, m)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("x = 3, y = 3")); err == nil {
		t.Fatal("expected error decoding non-image data")
	}
}
