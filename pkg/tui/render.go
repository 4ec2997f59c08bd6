package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/radial/pkg/anim"
	"tableflip.dev/radial/pkg/config"
	"tableflip.dev/radial/pkg/geometry"
	"tableflip.dev/radial/pkg/menu"
	"tableflip.dev/radial/pkg/theme"
)

// backGlyph marks the center back affordance in submenus.
const backGlyph = "←"

// fitRing scales the configured radii to the terminal while preserving
// their ratio, leaving margin for the animation overshoot.
func fitRing(cfg config.Config, width, height int) geometry.Ring {
	maxR := math.Min(float64(width)/2, float64(height)*cellAspect/2)
	maxR = maxR/anim.OvershootMargin - 1
	if maxR < 4 {
		maxR = 4
	}
	factor := maxR / float64(cfg.Radius)
	return geometry.Ring{
		CenterRadius: float64(cfg.CenterRadius) * factor,
		OuterRadius:  maxR,
	}
}

// cell is one terminal cell of the painted canvas.
type cell struct {
	ch    rune
	fg    theme.Color
	bg    theme.Color
	hasFg bool
	hasBg bool
	bold  bool
}

// View paints the menu. Background fills are computed per cell in polar
// coordinates; labels, hints, and the center text are overlaid afterwards.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	items := m.ctrl.Visible()
	n := len(items)
	ring := m.ctrl.Ring()
	cx, cy := m.ctrl.Center()
	a := m.ctrl.Animation()

	scale := a.Scale()
	if scale < 0 {
		scale = 0
	}
	wipe := a.WipeAngle()
	fade := 1.0 - a.Opacity()

	grid := make([][]cell, m.height)
	for r := range grid {
		grid[r] = make([]cell, m.width)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}

	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			x := float64(col) + 0.5
			y := (float64(row) + 0.5) * cellAspect
			m.paintCell(&grid[row][col], x, y, cx, cy, ring, items, n, scale, wipe)
		}
	}

	m.overlayLabels(grid, items, n, ring, cx, cy, wipe)
	m.overlayCenter(grid, items, ring, cx, cy, scale)

	return m.renderGrid(grid, fade)
}

func (m Model) paintCell(c *cell, x, y, cx, cy float64, ring geometry.Ring, items []menu.Item, n int, scale, wipe float64) {
	dx := x - cx
	dy := y - cy
	d := math.Hypot(dx, dy)

	centerR := ring.CenterRadius * scale
	if d < centerR {
		bg := m.theme.Center
		if m.ctrl.InSubmenu() {
			bg = m.theme.Hover
		}
		c.bg = bg
		c.hasBg = true
		if centerR-d < 1.0 {
			c.bg = m.theme.Border
		}
		return
	}

	if n == 0 {
		return
	}

	deg := geometry.Angle(x, y, cx, cy)
	if deg > wipe {
		return // not yet revealed by the opening sweep
	}

	idx := geometry.WedgeIndex(deg, n)
	if idx < 0 || idx >= n {
		return
	}
	item := items[idx]
	inner, outer := geometry.WedgeSpan(ring, item.Priority)
	inner *= scale
	outer *= scale
	if d < inner || d > outer {
		return
	}

	t := item.EffectiveTheme(m.theme)
	bg := t.Background
	if idx == m.ctrl.Hover() {
		bg = t.Hover
	}
	c.bg = bg
	c.hasBg = true

	// Thin border band at the outer rim and along the wedge's opening edge.
	if outer-d < 1.0 || d-inner < 1.0 {
		c.bg = t.Border
		return
	}
	start, _ := geometry.WedgeAngles(idx, n)
	if deg-start < degreesPerCell(d) {
		c.bg = t.Border
	}
}

// degreesPerCell approximates the angular width of one cell at radius d,
// used to draw single-cell wedge separators.
func degreesPerCell(d float64) float64 {
	if d < 1 {
		return 360
	}
	return 180.0 / (math.Pi * d) * 1.5
}

func (m Model) overlayLabels(grid [][]cell, items []menu.Item, n int, ring geometry.Ring, cx, cy float64, wipe float64) {
	if n == 0 || m.ctrl.Closing() {
		return
	}
	for i, item := range items {
		start, end := geometry.WedgeAngles(i, n)
		if (start+end)/2 > wipe {
			continue
		}
		x, y := geometry.LabelAnchor(cx, cy, ring, i, n, item.Priority)
		row := int(y/cellAspect + 0.5)
		col := int(x + 0.5)

		t := item.EffectiveTheme(m.theme)
		label := item.Label
		if item.HasIcon() {
			// No pixmaps in a terminal: degrade to a glyph next to the label.
			label = "⬢ " + label
		}
		m.writeCentered(grid, row, col, label, t.Font, true)

		if hint := m.ctrl.Hotkeys().Hint(i); hint != "" {
			m.writeCentered(grid, row+1, col, "["+hint+"]", t.Font, false)
		}
	}
}

func (m Model) overlayCenter(grid [][]cell, items []menu.Item, ring geometry.Ring, cx, cy float64, scale float64) {
	row := int(cy/cellAspect + 0.5)
	col := int(cx + 0.5)

	if m.ctrl.InSubmenu() {
		m.writeCentered(grid, row, col, backGlyph, m.theme.Font, true)
		return
	}

	hover := m.ctrl.Hover()
	if hover < 0 || hover >= len(items) || m.ctrl.Closing() {
		return
	}
	desc := items[hover].Description
	if desc == "" {
		return
	}

	width := int(ring.CenterRadius*scale*1.4) - 2
	if width < 8 {
		width = 8
	}
	wrapped := wordwrap.String(desc, width)
	lines := strings.Split(wrapped, "\n")
	startRow := row - len(lines)/2
	for i, line := range lines {
		m.writeCentered(grid, startRow+i, col, line, m.theme.Font, false)
	}
}

func (m Model) writeCentered(grid [][]cell, row, col int, text string, fg theme.Color, bold bool) {
	runes := []rune(text)
	start := col - len(runes)/2
	if row < 0 || row >= len(grid) {
		return
	}
	for i, r := range runes {
		c := start + i
		if c < 0 || c >= len(grid[row]) {
			continue
		}
		grid[row][c].ch = r
		grid[row][c].fg = fg
		grid[row][c].hasFg = true
		grid[row][c].bold = bold
	}
}

// renderGrid turns the painted cells into a styled string. During the close
// fade every color is blended toward the terminal background.
func (m Model) renderGrid(grid [][]cell, fade float64) string {
	target := theme.RGB(0, 0, 0)
	if !termenv.HasDarkBackground() {
		target = theme.RGB(255, 255, 255)
	}

	var b strings.Builder
	for row := range grid {
		for col := range grid[row] {
			c := grid[row][col]
			style := lipgloss.NewStyle()
			styled := false
			if c.hasBg {
				bg := c.bg
				if fade > 0 {
					bg = bg.Blend(target, fade)
				}
				style = style.Background(lipgloss.Color(bg.Hex()))
				styled = true
			}
			if c.hasFg && c.ch != ' ' {
				fg := c.fg
				if fade > 0 {
					fg = fg.Blend(target, fade)
				}
				style = style.Foreground(lipgloss.Color(fg.Hex()))
				if c.bold {
					style = style.Bold(true)
				}
				styled = true
			}
			if styled {
				b.WriteString(style.Render(string(c.ch)))
			} else {
				b.WriteRune(c.ch)
			}
		}
		if row < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
