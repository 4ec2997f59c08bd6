// Package anim models the open/close transitions of the menu as a pure
// progress function over wall-clock time, so any host (a Bubble Tea tick
// loop, a test) can drive it without a scheduler dependency.
package anim

import (
	"math"
	"time"
)

// Overshoot constants for the ease-out-back curve. The curve transiently
// exceeds its target, so renderers size the canvas with extra margin.
const (
	backC1 = 1.70158
	backC3 = backC1 + 1.0

	// OvershootMargin is the canvas padding factor that keeps the peak of
	// the ease-out-back curve from clipping.
	OvershootMargin = 1.08
)

// Phase identifies the controller's transition state.
type Phase int

const (
	// Idle means no transition is running; the menu is fully shown.
	Idle Phase = iota
	// Opening means the scale-and-wipe reveal is in flight.
	Opening
	// Closing means the fade-and-shrink dismissal is in flight.
	Closing
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	default:
		return "idle"
	}
}

// EaseOutBack is the overshoot easing curve used for both transitions:
// f(t) = 1 + c3*(t-1)^3 + c1*(t-1)^2 with c1 = 1.70158.
func EaseOutBack(t float64) float64 {
	return 1.0 + backC3*math.Pow(t-1.0, 3.0) + backC1*math.Pow(t-1.0, 2.0)
}

// EaseOutCubic is a gentler alternative curve kept for the close fade.
func EaseOutCubic(t float64) float64 {
	return 1.0 - math.Pow(1.0-t, 3.0)
}

// Progress maps elapsed time over a duration to eased progress. Elapsed at
// or beyond the duration saturates at exactly 1.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1.0
	}
	if elapsed <= 0 {
		return EaseOutBack(0)
	}
	return EaseOutBack(float64(elapsed) / float64(duration))
}

// Controller owns the single active transition. Starting a new transition
// replaces any in-flight one; ticks are supplied by the host.
type Controller struct {
	phase    Phase
	start    time.Time
	duration time.Duration
	progress float64
}

// NewController builds a controller with the configured transition duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{phase: Idle, duration: duration, progress: 1.0}
}

// Open starts (or restarts) the opening transition at progress 0.
func (c *Controller) Open(now time.Time) {
	c.phase = Opening
	c.start = now
	c.progress = 0
}

// Close starts the closing transition, pre-empting any open in flight.
func (c *Controller) Close(now time.Time) {
	c.phase = Closing
	c.start = now
	c.progress = 0
}

// Cancel drops any in-flight transition and returns to the settled state.
func (c *Controller) Cancel() {
	c.phase = Idle
	c.progress = 1.0
}

// Tick advances the transition to now. It returns true when the tick
// completed a transition; for Closing that completion ends the session.
func (c *Controller) Tick(now time.Time) (done bool) {
	if c.phase == Idle {
		return false
	}
	elapsed := now.Sub(c.start)
	c.progress = Progress(elapsed, c.duration)
	if elapsed >= c.duration {
		c.progress = 1.0
		if c.phase == Opening {
			c.phase = Idle
			return true
		}
		// Closing stays in phase so the host can observe it before
		// tearing the session down.
		return true
	}
	return false
}

// Phase returns the current transition phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Active reports whether a transition is in flight. Progress is not a
// proxy for this: the easing curve overshoots past 1 mid-flight.
func (c *Controller) Active() bool {
	return c.phase != Idle
}

// Progress returns the eased progress of the active transition in [0,1]
// (transiently above 1 during the overshoot).
func (c *Controller) Progress() float64 {
	return c.progress
}

// Scale returns the uniform scale factor the renderer applies. Opening
// scales up with progress; closing shrinks with the inverse.
func (c *Controller) Scale() float64 {
	if c.phase == Closing {
		return 1.0 - c.progress
	}
	return c.progress
}

// Opacity mirrors Scale for the close fade; it is 1 outside a close.
func (c *Controller) Opacity() float64 {
	if c.phase == Closing {
		return clampUnit(1.0 - c.progress)
	}
	return 1.0
}

// WipeAngle returns how many degrees of the circle are revealed, sweeping
// clockwise from up. The wipe only applies while opening; otherwise the
// full circle is visible.
func (c *Controller) WipeAngle() float64 {
	if c.phase != Opening {
		return 360
	}
	a := 360 * c.progress
	if a < 0 {
		return 0
	}
	if a > 360 {
		return 360
	}
	return a
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
