package tui

import (
	"time"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// holdWindow is how long a direction stays pressed after its last key event.
// Terminals only send key repeats, never releases, so a held key is a stream
// of presses. The window has to span the repeat delay of common terminals.
const holdWindow = 300 * time.Millisecond

// heldInput turns discrete key presses into held directions.
type heldInput struct {
	ticks int                 // ticks a press stays held
	left  map[core.Action]int // remaining ticks per held action
}

func newHeldInput(tickRate int) *heldInput {
	return &heldInput{ticks: ticksFor(holdWindow, tickRate), left: make(map[core.Action]int)}
}

// opposite returns the direction that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// press holds a for the hold window. Pressing a direction releases its
// opposite.
func (h *heldInput) press(a core.Action) {
	if o := opposite(a); o != core.ActionNone {
		delete(h.left, o)
	}
	h.left[a] = h.ticks
}

// apply sets every held action on frame and ages the holds by one tick.
func (h *heldInput) apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// drop releases a before its window runs out.
func (h *heldInput) drop(a core.Action) {
	delete(h.left, a)
}

func (h *heldInput) release() {
	clear(h.left)
}

// isHeld reports whether a is a continuous action rather than a one-shot.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionPrecision:
		return true
	}
	return false
}
