package theme

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		set   bool
		alpha float64
	}{
		{name: "rgb", hex: "#4c80cc", set: true, alpha: 1.0},
		{name: "rgba", hex: "#4c80cc80", set: true, alpha: 128.0 / 255.0},
		{name: "no hash", hex: "4c80cc", set: true, alpha: 1.0},
		{name: "short", hex: "#fff", set: false},
		{name: "garbage", hex: "#zzzzzz", set: false},
		{name: "empty", hex: "", set: false},
		{name: "bad alpha", hex: "#4c80ccqq", set: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ParseHex(tc.hex)
			if c.IsSet() != tc.set {
				t.Fatalf("ParseHex(%q).IsSet() = %v, want %v", tc.hex, c.IsSet(), tc.set)
			}
			if tc.set && math.Abs(c.A-tc.alpha) > 1e-9 {
				t.Fatalf("ParseHex(%q) alpha = %v, want %v", tc.hex, c.A, tc.alpha)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	if got := RGB(76, 128, 204).Hex(); got != "#4c80cc" {
		t.Fatalf("Hex() = %q, want #4c80cc", got)
	}
}

func TestInheritFillsUnsetOnly(t *testing.T) {
	parent := Default()
	child := Theme{Hover: RGB(255, 0, 0), FontSize: DefaultFontSize}

	got := child.Inherit(parent)
	if got.Hover != child.Hover {
		t.Fatalf("set hover should win over the parent")
	}
	if got.Background != parent.Background {
		t.Fatalf("unset background should inherit")
	}
	if got.Font != parent.Font {
		t.Fatalf("unset font color should inherit")
	}
}

func TestInheritIdempotent(t *testing.T) {
	parent := Default()
	child := Theme{Border: RGB(1, 2, 3), FontSize: 20}

	once := child.Inherit(parent)
	twice := once.Inherit(parent)
	if once != twice {
		t.Fatalf("inherit not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestInheritFontSize(t *testing.T) {
	parent := Default()
	parent.FontSize = 18

	child := Theme{}
	if got := child.Inherit(parent).FontSize; got != 18 {
		t.Fatalf("default font size should inherit, got %d", got)
	}

	child.FontSize = 22
	if got := child.Inherit(parent).FontSize; got != 22 {
		t.Fatalf("explicit font size should win, got %d", got)
	}
}

func TestBlend(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	if got := black.Blend(white, 0); got.Hex() != "#000000" {
		t.Fatalf("blend at 0 = %q, want the receiver", got.Hex())
	}
	if got := black.Blend(white, 1); got.Hex() != "#ffffff" {
		t.Fatalf("blend at 1 = %q, want the target", got.Hex())
	}
	mid := black.Blend(white, 0.5)
	if mid.R <= 0 || mid.R >= 1 {
		t.Fatalf("midpoint blend channel = %v, want inside (0, 1)", mid.R)
	}
}
