package ui

import (
	"fmt"

	"torus-life/pkg/core"
)

// Status carries the driver-side figures shown next to the grid.
type Status struct {
	MeasuredTPS float64
	LimitTPS    int
	Paused      bool
}

// Line is one row of panel text.
type Line struct {
	Text string
	Kind LineKind
}

// LineKind selects how a line is styled.
type LineKind int

// Line kinds, from the panel heading down to the key help.
const (
	LineTitle LineKind = iota
	LineValue
	LineNotice
	LineHelp
)

// Instructions lists the key bindings shared by the GUI and terminal views.
var Instructions = []string{
	"Space: pause/resume",
	"N: single step",
	"Up/Down: TPS limit",
	"R: reseed  S: new seed",
	"Q/Esc: quit",
}

// StatusLines builds the panel text for sim. Values come from the sim's
// parameter snapshot when it provides one.
func StatusLines(sim core.Sim, st Status) []Line {
	size := sim.Size()
	lines := []Line{{Text: fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H), Kind: LineTitle}}
	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			if group.Name == "Grid" {
				continue
			}
			for _, p := range group.Params {
				lines = append(lines, Line{Text: p.Label + ": " + p.Value, Kind: LineValue})
			}
		}
	} else {
		lines = append(lines, Line{Text: fmt.Sprintf("Generation: %d", sim.Generation()), Kind: LineValue})
	}
	lines = append(lines,
		Line{Text: fmt.Sprintf("TPS: %.2f", st.MeasuredTPS), Kind: LineValue},
		Line{Text: fmt.Sprintf("TPS limit: %d", st.LimitTPS), Kind: LineValue},
	)
	if st.Paused {
		lines = append(lines, Line{Text: "Paused", Kind: LineNotice})
	}
	return lines
}
