package ui

import (
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

type bareSim struct{}

func (bareSim) Name() string       { return "bare" }
func (bareSim) Size() core.Size    { return core.Size{W: 2, H: 3} }
func (bareSim) Reset(int64)        {}
func (bareSim) Step() []core.Point { return nil }
func (bareSim) Cells() []uint8     { return make([]uint8, 6) }
func (bareSim) Generation() int    { return 7 }

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestStatusLinesFromParameters(t *testing.T) {
	grid, err := life.New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, y := range []int{1, 2, 3} {
		if err := grid.Set(2, y, core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	grid.Step()

	lines := StatusLines(grid, Status{MeasuredTPS: 59.5, LimitTPS: 60, Paused: true})
	want := []string{"life 5x5", "Generation: 1", "Population: 3", "TPS: 59.50", "TPS limit: 60", "Paused"}
	got := texts(lines)
	if len(got) != len(want) {
		t.Fatalf("lines=%q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d=%q, expected %q", i, got[i], want[i])
		}
	}
	if lines[0].Kind != LineTitle || lines[len(lines)-1].Kind != LineNotice {
		t.Fatal("unexpected line kinds")
	}
}

func TestStatusLinesWithoutParameters(t *testing.T) {
	got := texts(StatusLines(bareSim{}, Status{LimitTPS: 5}))
	want := []string{"bare 2x3", "Generation: 7", "TPS: 0.00", "TPS limit: 5"}
	if len(got) != len(want) {
		t.Fatalf("lines=%q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d=%q, expected %q", i, got[i], want[i])
		}
	}
}

func TestLineKindsDistinct(t *testing.T) {
	kinds := map[LineKind]bool{LineTitle: true, LineValue: true, LineNotice: true, LineHelp: true}
	if len(kinds) != 4 {
		t.Fatal("line kinds must be distinct")
	}
}
