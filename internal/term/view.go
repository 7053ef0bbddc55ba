// Package term draws a simulation in a terminal with tcell. Each cell takes
// two columns so the grid keeps a roughly square aspect.
package term

import (
	"context"
	"time"

	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const (
	aliveRune = '█'
	panelGap  = 2
)

var (
	cellStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(222, 235, 40))
	panelStyle = tcell.StyleDefault
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// View owns the terminal side of a running simulation.
type View struct {
	screen tcell.Screen
	sim    core.Sim
	reseed func(seed int64)
	timer  *core.FixedStep

	shadow   []uint8
	paused   bool
	tickOnce bool
	seed     int64

	measured    float64
	windowStart time.Time
	windowSteps int
}

// New binds sim to an initialised screen.
func New(screen tcell.Screen, sim core.Sim, reseed func(seed int64), tps int, seed int64) *View {
	v := &View{
		screen: screen,
		sim:    sim,
		reseed: reseed,
		timer:  core.NewFixedStep(tps),
		seed:   seed,
	}
	v.Redraw()
	return v
}

// Redraw repaints the whole grid and the panel.
func (v *View) Redraw() {
	v.screen.Clear()
	v.shadow = v.sim.Cells()
	size := v.sim.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v.drawCell(x, y)
		}
	}
	v.drawPanel()
}

func (v *View) drawCell(x, y int) {
	r := ' '
	if v.shadow[y*v.sim.Size().W+x] != 0 {
		r = aliveRune
	}
	v.screen.SetContent(2*x, y, r, nil, cellStyle)
	v.screen.SetContent(2*x+1, y, r, nil, cellStyle)
}

// apply flips the cells reported by a step.
func (v *View) apply(changes []core.Point) {
	w := v.sim.Size().W
	for _, p := range changes {
		v.shadow[p.Y*w+p.X] ^= 1
		v.drawCell(p.X, p.Y)
	}
}

func (v *View) drawPanel() {
	left := 2*v.sim.Size().W + panelGap
	width, _ := v.screen.Size()
	row := 0
	put := func(s string, style tcell.Style) {
		col := left
		for _, r := range s {
			v.screen.SetContent(col, row, r, nil, style)
			col++
		}
		for ; col < width; col++ {
			v.screen.SetContent(col, row, ' ', nil, panelStyle)
		}
		row++
	}
	for _, line := range ui.StatusLines(v.sim, v.status()) {
		style := panelStyle
		if line.Kind == ui.LineNotice {
			style = helpStyle
		}
		put(line.Text, style)
	}
	put("", panelStyle)
	put("", panelStyle)
	for _, help := range ui.Instructions {
		put(help, helpStyle)
	}
}

func (v *View) status() ui.Status {
	return ui.Status{MeasuredTPS: v.measured, LimitTPS: v.timer.TPS(), Paused: v.paused}
}

// HandleKey applies a key press and reports whether the view should close.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.timer.SetTPS(core.AdjustTPS(v.timer.TPS(), true))
	case tcell.KeyDown:
		v.timer.SetTPS(core.AdjustTPS(v.timer.TPS(), false))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n', 'N':
			v.tickOnce = true
		case 'r', 'R':
			v.reset(v.seed)
		case 's', 'S':
			v.reset(time.Now().UnixNano())
		}
	}
	v.drawPanel()
	return false
}

func (v *View) reset(seed int64) {
	v.seed = seed
	v.reseed(seed)
	v.tickOnce = false
	v.Redraw()
}

// Tick advances the simulation once unless paused, and repaints what changed.
func (v *View) Tick(now time.Time) {
	if v.paused && !v.tickOnce {
		return
	}
	v.tickOnce = false
	v.apply(v.sim.Step())

	if v.windowStart.IsZero() {
		v.windowStart = now
	}
	v.windowSteps++
	if elapsed := now.Sub(v.windowStart); elapsed >= time.Second {
		v.measured = float64(v.windowSteps) / elapsed.Seconds()
		v.windowStart = now
		v.windowSteps = 0
	}
	v.drawPanel()
}

// Run drives the view until the user quits or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	interval := v.timer.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	v.screen.Show()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.Redraw()
			}
		case now := <-ticker.C:
			if v.timer.ShouldStep() {
				v.Tick(now)
			}
		}
		if next := v.timer.Interval(); next != interval {
			interval = next
			ticker.Reset(interval)
		}
		v.screen.Show()
	}
}
