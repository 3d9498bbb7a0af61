package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

func TestHeldInputWindow(t *testing.T) {
	h := newHeldInput(60)
	if h.ticks != 18 {
		t.Fatalf("ticks = %d, want 18", h.ticks)
	}

	h.press(core.ActionUp)
	frame := core.NewInputFrame()
	for i := 0; i < h.ticks; i++ {
		frame.Clear()
		h.apply(&frame)
		if !frame.Has(core.ActionUp) {
			t.Fatalf("tick %d: up released early", i)
		}
	}

	frame.Clear()
	h.apply(&frame)
	if frame.Has(core.ActionUp) {
		t.Error("up still held after the window")
	}
}

func TestHeldInputOpposites(t *testing.T) {
	h := newHeldInput(60)
	h.press(core.ActionLeft)
	h.press(core.ActionUp)
	h.press(core.ActionRight)

	frame := core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Errorf("frame = %v, want Up and Right", frame.Actions)
	}

	h.release()
	frame.Clear()
	h.apply(&frame)
	if frame.Any() {
		t.Errorf("frame = %v after release", frame.Actions)
	}
}

func TestIsHeld(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionPrecision} {
		if !isHeld(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionRestart, core.ActionPause, core.ActionToggleMode} {
		if isHeld(a) {
			t.Errorf("%v should be one-shot", a)
		}
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		rate int
		want int
	}{
		{"hold window at 60", holdWindow, 60, 18},
		{"hold window at 30", holdWindow, 30, 9},
		{"zero rate uses default", holdWindow, 0, 18},
		{"shorter than a tick", time.Millisecond, 60, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ticksFor(tt.d, tt.rate); got != tt.want {
				t.Errorf("ticksFor(%v, %d) = %d, want %d", tt.d, tt.rate, got, tt.want)
			}
		})
	}
}
