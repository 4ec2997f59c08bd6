// Package theme defines the color model for the radial menu, including the
// unset-color sentinel and parent/child inheritance used by item overrides.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFontSize is the font size used when a theme does not set one.
const DefaultFontSize = 14

// Color is an RGBA color where a zero alpha marks the color as unset.
type Color struct {
	R, G, B float64
	A       float64
}

// RGB builds an opaque color from 0-255 channel values.
func RGB(r, g, b int) Color {
	return Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0, A: 1.0}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". A malformed string yields the
// unset color rather than an error, so a bad override falls back to the
// parent theme.
func ParseHex(hex string) Color {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}
	}

	c, err := colorful.Hex("#" + h[:6])
	if err != nil {
		return Color{}
	}

	alpha := 1.0
	if len(h) == 8 {
		v, err := strconv.ParseUint(h[6:8], 16, 8)
		if err != nil {
			return Color{}
		}
		alpha = float64(v) / 255.0
	}

	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// IsSet reports whether the color carries a value. Unset colors inherit.
func (c Color) IsSet() bool {
	return c.A > 0
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex renders the color as "#RRGGBB" for terminal styling.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Blend mixes the color toward other in RGB space by t in [0,1]. The renderer
// uses this to approximate opacity during the close fade.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	b := colorful.Color{R: clamp01(other.R), G: clamp01(other.G), B: clamp01(other.B)}
	m := a.BlendRgb(b, clamp01(t))
	return Color{R: m.R, G: m.G, B: m.B, A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Theme holds the five named menu colors plus the font size. Individual
// colors may be unset, in which case Inherit fills them from an ancestor.
type Theme struct {
	Background Color
	Hover      Color
	Border     Color
	Font       Color
	Center     Color
	FontSize   int
}

// Default returns the built-in palette.
func Default() Theme {
	return Theme{
		Background: RGB(34, 34, 34).WithAlpha(0.85),
		Hover:      RGB(76, 128, 204).WithAlpha(0.9),
		Border:     RGB(230, 230, 230).WithAlpha(0.9),
		Font:       RGB(255, 255, 255),
		Center:     RGB(38, 38, 38).WithAlpha(0.9),
		FontSize:   DefaultFontSize,
	}
}

// Inherit fills every unset field from parent. Set fields always win, so
// applying the same parent twice is a no-op.
func (t Theme) Inherit(parent Theme) Theme {
	out := t
	if !out.Background.IsSet() {
		out.Background = parent.Background
	}
	if !out.Hover.IsSet() {
		out.Hover = parent.Hover
	}
	if !out.Border.IsSet() {
		out.Border = parent.Border
	}
	if !out.Font.IsSet() {
		out.Font = parent.Font
	}
	if !out.Center.IsSet() {
		out.Center = parent.Center
	}
	if out.FontSize == 0 || (out.FontSize == DefaultFontSize && parent.FontSize != DefaultFontSize) {
		out.FontSize = parent.FontSize
	}
	return out
}

// String summarizes which fields are set, for debug logging.
func (t Theme) String() string {
	set := make([]string, 0, 5)
	for _, f := range []struct {
		name string
		c    Color
	}{
		{"background", t.Background},
		{"hover", t.Hover},
		{"border", t.Border},
		{"font", t.Font},
		{"center", t.Center},
	} {
		if f.c.IsSet() {
			set = append(set, f.name)
		}
	}
	return fmt.Sprintf("theme{set: %s, font-size: %d}", strings.Join(set, ","), t.FontSize)
}
