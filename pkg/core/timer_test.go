package core

import (
	"testing"
	"time"
)

func TestAdjustTPS(t *testing.T) {
	cases := []struct {
		in   int
		up   bool
		want int
	}{
		{60, true, 65},
		{60, false, 55},
		{5, false, 1},
		{3, false, 1},
		{1, false, 1},
		{1, true, 5},
		{5, true, 10},
	}
	for _, c := range cases {
		if got := AdjustTPS(c.in, c.up); got != c.want {
			t.Fatalf("AdjustTPS(%d, %v)=%d, expected %d", c.in, c.up, got, c.want)
		}
	}
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.TPS() != 10 || fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected rate %d / %s", fs.TPS(), fs.Interval())
	}
	start := time.Unix(0, 0)
	if !fs.advance(start) {
		t.Fatal("first tick should fire immediately")
	}
	if fs.advance(start.Add(50 * time.Millisecond)) {
		t.Fatal("tick fired before the interval elapsed")
	}
	if !fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("tick did not fire after the interval elapsed")
	}
	// A long stall yields at most two catch-up ticks.
	now := start.Add(10 * time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.advance(now) {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("fired %d ticks after a stall, expected at most 2", fired)
	}

	fs.SetTPS(0)
	if fs.TPS() != 60 {
		t.Fatalf("SetTPS(0) should fall back to 60, got %d", fs.TPS())
	}
}
