// Package nav implements the hierarchical navigation state machine at the
// core of the menu: the level stack, hover selection, hotkey dispatch, and
// the transitions between opening, browsing, and closing.
package nav

import (
	"time"

	"tableflip.dev/radial/pkg/hotkey"
)

// Event is the input sum type the presentation layer translates toolkit
// callbacks into. The state machine consumes nothing else.
type Event interface {
	isEvent()
}

// PointerMove reports pointer motion in canvas coordinates.
type PointerMove struct {
	X, Y float64
}

// PointerClick reports a primary-button press in canvas coordinates.
type PointerClick struct {
	X, Y float64
}

// KeyPress reports a key event after chord translation.
type KeyPress struct {
	Key hotkey.Event
}

// Scroll reports wheel motion; either axis may drive hover cycling.
type Scroll struct {
	DX, DY float64
}

// Tick is a timer pulse carrying the current wall-clock time. It drives
// animation progress and the idle check.
type Tick struct {
	Now time.Time
}

func (PointerMove) isEvent()  {}
func (PointerClick) isEvent() {}
func (KeyPress) isEvent()     {}
func (Scroll) isEvent()       {}
func (Tick) isEvent()         {}

// scrollThreshold filters jitter before a wheel step cycles the hover.
const scrollThreshold = 5.0
