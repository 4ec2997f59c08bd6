// Package tui hosts the Bubble Tea program that presents the radial menu in
// a terminal. It is a thin translation layer: toolkit messages become nav
// events, and the renderer paints whatever the engine says is visible.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/radial/pkg/anim"
	"tableflip.dev/radial/pkg/config"
	"tableflip.dev/radial/pkg/geometry"
	"tableflip.dev/radial/pkg/hotkey"
	"tableflip.dev/radial/pkg/idle"
	"tableflip.dev/radial/pkg/nav"
	"tableflip.dev/radial/pkg/theme"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide: rows are stretched by this factor in menu space.
const cellAspect = 2.0

// Frame cadence for animation ticks.
const frameInterval = time.Second / 60

type keyMap struct {
	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type frameMsg time.Time
type idleMsg time.Time

// Model is the Bubble Tea model wrapping the navigation controller.
type Model struct {
	ctrl  *nav.Controller
	cfg   config.Config
	keys  keyMap
	theme theme.Theme

	width  int
	height int

	now func() time.Time
}

// New assembles the model. The execute callback and most-used resolver come
// from the session layer so the UI carries no process concerns.
func New(cfg config.Config, execute nav.Execute, mostUsed nav.MostUsed) Model {
	now := time.Now()
	ring := geometry.Ring{
		CenterRadius: float64(cfg.CenterRadius),
		OuterRadius:  float64(cfg.Radius),
	}
	ctrl := nav.New(cfg.Items, ring,
		anim.NewController(cfg.AnimationSpeed),
		idle.NewMonitor(cfg.AutoClose, now),
		execute, mostUsed, now)

	return Model{
		ctrl:  ctrl,
		cfg:   cfg,
		keys:  defaultKeyMap,
		theme: cfg.Theme,
		now:   time.Now,
	}
}

// Controller exposes the engine for tests.
func (m Model) Controller() *nav.Controller {
	return m.ctrl
}

// Init starts the animation frame loop and, when enabled, the idle poll.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameTick()}
	if m.cfg.AutoClose > 0 {
		cmds = append(cmds, idleTick())
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func idleTick() tea.Cmd {
	return tea.Tick(idle.PollInterval, func(t time.Time) tea.Msg { return idleMsg(t) })
}

// Update translates toolkit messages into nav events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctrl.SetCenter(float64(msg.Width)/2, float64(msg.Height)*cellAspect/2)
		m.ctrl.SetRing(fitRing(m.cfg, msg.Width, msg.Height))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		out := m.ctrl.Handle(nav.KeyPress{Key: translateKey(msg)}, m.now())
		return m.after(out)

	case tea.MouseMsg:
		return m.onMouse(msg)

	case frameMsg:
		out := m.ctrl.Handle(nav.Tick{Now: time.Time(msg)}, time.Time(msg))
		if out.Terminate {
			return m, tea.Quit
		}
		return m, frameTick()

	case idleMsg:
		out := m.ctrl.Handle(nav.Tick{Now: time.Time(msg)}, time.Time(msg))
		if out.Terminate {
			return m, tea.Quit
		}
		if m.ctrl.Closing() || m.ctrl.Terminated() {
			return m, nil
		}
		return m, idleTick()
	}
	return m, nil
}

func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.menuCoords(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseMotion:
		return m.after(m.ctrl.Handle(nav.PointerMove{X: x, Y: y}, m.now()))
	case tea.MouseLeft:
		return m.after(m.ctrl.Handle(nav.PointerClick{X: x, Y: y}, m.now()))
	case tea.MouseWheelUp:
		return m.after(m.ctrl.Handle(nav.Scroll{DY: -2 * scrollStep}, m.now()))
	case tea.MouseWheelDown:
		return m.after(m.ctrl.Handle(nav.Scroll{DY: 2 * scrollStep}, m.now()))
	}
	return m, nil
}

// scrollStep converts one wheel notch into units past the engine's jitter
// threshold.
const scrollStep = 5.0

func (m Model) after(out nav.Outcome) (tea.Model, tea.Cmd) {
	if out.Terminate {
		return m, tea.Quit
	}
	return m, nil
}

// menuCoords maps a terminal cell to menu space, stretching rows to square
// up the aspect ratio.
func (m Model) menuCoords(col, row int) (x, y float64) {
	return float64(col), float64(row) * cellAspect
}

// translateKey converts a Bubble Tea key message into the engine's chord
// event form. Bubble Tea spells chords "ctrl+alt+x", which maps directly
// onto the resolver's modifier model.
func translateKey(msg tea.KeyMsg) hotkey.Event {
	ev := hotkey.Event{}

	parts := strings.Split(msg.String(), "+")
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl":
			ev.Mods |= hotkey.ModCtrl
		case "alt":
			ev.Mods |= hotkey.ModAlt
		case "shift":
			ev.Mods |= hotkey.ModShift
		}
	}
	raw := parts[len(parts)-1]
	ev.Key = hotkey.NormalizeKey(raw)

	if msg.Alt {
		ev.Mods |= hotkey.ModAlt
	}
	// An upper-case letter implies Shift even though terminals do not
	// report the modifier separately.
	if r := []rune(raw); len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z' {
		ev.Mods |= hotkey.ModShift
	}
	return ev
}
