package core

import "time"

// TPSStep is the increment applied by AdjustTPS.
const TPSStep = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the target tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall instead of bursting through it.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// AdjustTPS returns the tick rate after one up or down keypress. Going down
// never drops below 1; going up from 1 jumps straight to TPSStep.
func AdjustTPS(tps int, up bool) int {
	if up {
		if tps <= 1 {
			return TPSStep
		}
		return tps + TPSStep
	}
	tps -= TPSStep
	if tps <= 0 {
		return 1
	}
	return tps
}
