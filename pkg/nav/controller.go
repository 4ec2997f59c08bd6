package nav

import (
	"log/slog"
	"time"

	"tableflip.dev/radial/pkg/anim"
	"tableflip.dev/radial/pkg/geometry"
	"tableflip.dev/radial/pkg/hotkey"
	"tableflip.dev/radial/pkg/idle"
	"tableflip.dev/radial/pkg/menu"
)

// NoHover marks the absence of a hovered wedge.
const NoHover = -1

// Execute runs a selected leaf item. It is injected by the session layer so
// the state machine stays free of process concerns. Errors are reported,
// never propagated: the menu closes after any selection attempt.
type Execute func(item menu.Item, path []string) error

// MostUsed resolves the most-used root item label for the Enter shortcut.
type MostUsed func() (string, bool)

// Outcome tells the host what a handled event changed.
type Outcome struct {
	Redraw    bool
	Terminate bool
}

// Controller is the navigation state machine. It owns the level stack, the
// visited-label path, the hover index, the per-level hotkey resolver, and
// the animation and idle sub-state. All mutation happens on the host's
// single event loop.
type Controller struct {
	stack    [][]menu.Item
	path     []string
	hover    int
	resolver *hotkey.Resolver

	ring   geometry.Ring
	cx, cy float64

	anim *anim.Controller
	idle *idle.Monitor

	execute  Execute
	mostUsed MostUsed

	terminated bool
}

// New builds a controller over the root items. The open animation starts
// immediately at progress 0.
func New(root []menu.Item, ring geometry.Ring, animation *anim.Controller, monitor *idle.Monitor, execute Execute, mostUsed MostUsed, now time.Time) *Controller {
	c := &Controller{
		stack:    [][]menu.Item{root},
		hover:    NoHover,
		ring:     ring,
		anim:     animation,
		idle:     monitor,
		execute:  execute,
		mostUsed: mostUsed,
	}
	c.rebuildHotkeys()
	c.anim.Open(now)
	return c
}

// SetCenter updates the canvas center used for hit testing, e.g. after a
// terminal resize.
func (c *Controller) SetCenter(x, y float64) {
	c.cx, c.cy = x, y
}

// Center returns the canvas center.
func (c *Controller) Center() (x, y float64) {
	return c.cx, c.cy
}

// Ring returns the menu annulus.
func (c *Controller) Ring() geometry.Ring {
	return c.ring
}

// SetRing replaces the annulus, keeping hit-testing in step with a
// renderer that refits the menu to its canvas.
func (c *Controller) SetRing(ring geometry.Ring) {
	c.ring = ring
}

// Depth returns the navigation stack depth; 1 means the root level.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// InSubmenu reports whether a back affordance should be shown.
func (c *Controller) InSubmenu() bool {
	return len(c.stack) > 1
}

// Visible returns the items of the level currently shown.
func (c *Controller) Visible() []menu.Item {
	return c.stack[len(c.stack)-1]
}

// Path returns the visited branch labels, root first.
func (c *Controller) Path() []string {
	return c.path
}

// Hover returns the hovered wedge index, or NoHover.
func (c *Controller) Hover() int {
	return c.hover
}

// Hotkeys returns the resolver for the visible level.
func (c *Controller) Hotkeys() *hotkey.Resolver {
	return c.resolver
}

// Animation exposes the animation controller to the renderer.
func (c *Controller) Animation() *anim.Controller {
	return c.anim
}

// Closing reports whether the session is in its close transition.
func (c *Controller) Closing() bool {
	return c.anim.Phase() == anim.Closing
}

// Terminated reports whether the session has fully ended.
func (c *Controller) Terminated() bool {
	return c.terminated
}

// Handle feeds one input event through the state machine.
func (c *Controller) Handle(ev Event, now time.Time) Outcome {
	if c.terminated {
		return Outcome{}
	}

	switch e := ev.(type) {
	case PointerMove:
		c.idle.Touch(now)
		return c.onMove(e)
	case PointerClick:
		c.idle.Touch(now)
		return c.onClick(e, now)
	case KeyPress:
		c.idle.Touch(now)
		return c.onKey(e, now)
	case Scroll:
		c.idle.Touch(now)
		return c.onScroll(e)
	case Tick:
		return c.onTick(e.Now)
	default:
		return Outcome{}
	}
}

func (c *Controller) onMove(e PointerMove) Outcome {
	old := c.hover
	c.hover = c.hitWedge(e.X, e.Y)
	return Outcome{Redraw: old != c.hover}
}

func (c *Controller) onClick(e PointerClick, now time.Time) Outcome {
	hit := geometry.HitTest(e.X, e.Y, c.cx, c.cy, c.ring, len(c.Visible()))

	switch hit.Kind {
	case geometry.HitOutside:
		return c.dismiss(now)
	case geometry.HitCenter:
		if c.InSubmenu() {
			return c.back(now)
		}
		return Outcome{}
	case geometry.HitWedge:
		return c.selectIndex(hit.Index, now)
	default:
		return Outcome{}
	}
}

func (c *Controller) onKey(e KeyPress, now time.Time) Outcome {
	if idx, ok := c.resolver.Find(e.Key); ok {
		return c.selectIndex(idx, now)
	}

	switch e.Key.Key {
	case "escape":
		// Escape backs out of a submenu; only at root does it dismiss.
		if c.InSubmenu() {
			return c.back(now)
		}
		return c.dismiss(now)
	case "enter":
		return c.onEnter(now)
	}
	return Outcome{}
}

func (c *Controller) onEnter(now time.Time) Outcome {
	if c.hover != NoHover {
		return c.selectIndex(c.hover, now)
	}
	if c.InSubmenu() || c.mostUsed == nil {
		return Outcome{}
	}
	label, ok := c.mostUsed()
	if !ok {
		return Outcome{}
	}
	for i, item := range c.Visible() {
		if item.Label == label && !item.HasChildren() {
			return c.selectIndex(i, now)
		}
	}
	return Outcome{}
}

func (c *Controller) onScroll(e Scroll) Outcome {
	n := len(c.Visible())
	if n == 0 {
		return Outcome{}
	}

	switch {
	case e.DY > scrollThreshold || e.DX > scrollThreshold:
		c.hover = (c.hover + 1) % n
	case e.DY < -scrollThreshold || e.DX < -scrollThreshold:
		c.hover = (c.hover - 1 + n) % n
	default:
		return Outcome{}
	}
	return Outcome{Redraw: true}
}

func (c *Controller) onTick(now time.Time) Outcome {
	out := Outcome{}

	if c.anim.Active() {
		done := c.anim.Tick(now)
		out.Redraw = true
		if done && c.anim.Phase() == anim.Closing {
			c.terminated = true
			out.Terminate = true
			return out
		}
	}

	if c.idle.Expired(now) {
		o := c.dismiss(now)
		out.Redraw = out.Redraw || o.Redraw
	}
	return out
}

// selectIndex activates the item at index in the visible level. An
// out-of-range index is a defensive no-op.
func (c *Controller) selectIndex(index int, now time.Time) Outcome {
	visible := c.Visible()
	if index < 0 || index >= len(visible) {
		return Outcome{}
	}
	item := visible[index]

	if item.HasChildren() {
		c.push(item, now)
		return Outcome{Redraw: true}
	}

	if c.execute != nil {
		if err := c.execute(item, c.path); err != nil {
			slog.Error("command execution failed", "item", item.Label, "err", err)
		}
	}
	return c.dismiss(now)
}

// push enters a submenu: new level on the stack, label on the path, hover
// reset, hotkeys rebuilt, open animation restarted from zero.
func (c *Controller) push(item menu.Item, now time.Time) {
	c.stack = append(c.stack, item.Children)
	c.path = append(c.path, item.Label)
	c.hover = NoHover
	c.rebuildHotkeys()
	c.anim.Open(now)
}

// back pops one level. At root depth it is a no-op.
func (c *Controller) back(now time.Time) Outcome {
	if !c.InSubmenu() {
		return Outcome{}
	}
	c.stack = c.stack[:len(c.stack)-1]
	if len(c.path) > 0 {
		c.path = c.path[:len(c.path)-1]
	}
	c.hover = NoHover
	c.rebuildHotkeys()
	c.anim.Open(now)
	return Outcome{Redraw: true}
}

// dismiss starts the close transition and stops the idle poll. The session
// terminates when the animation completes.
func (c *Controller) dismiss(now time.Time) Outcome {
	if c.Closing() {
		return Outcome{}
	}
	c.idle.Stop()
	c.anim.Close(now)
	return Outcome{Redraw: true}
}

func (c *Controller) rebuildHotkeys() {
	visible := c.Visible()
	chords := make([]string, len(visible))
	for i, item := range visible {
		chords[i] = item.Hotkey
	}
	c.resolver = hotkey.Build(chords)
}

func (c *Controller) hitWedge(x, y float64) int {
	hit := geometry.HitTest(x, y, c.cx, c.cy, c.ring, len(c.Visible()))
	if hit.Kind != geometry.HitWedge {
		return NoHover
	}
	return hit.Index
}
