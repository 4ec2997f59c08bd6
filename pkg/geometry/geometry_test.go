package geometry

import (
	"math"
	"testing"
)

func TestAngleCardinalDirections(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{name: "up", x: 0, y: -10, want: 0},
		{name: "right", x: 10, y: 0, want: 90},
		{name: "down", x: 0, y: 10, want: 180},
		{name: "left", x: -10, y: 0, want: 270},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Angle(tc.x, tc.y, 0, 0)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Angle(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestWedgeBoundaryBelongsToOpeningWedge(t *testing.T) {
	// Four wedges of 90° each. A boundary angle must map to exactly the
	// wedge it opens, never the one it closes.
	tests := []struct {
		deg  float64
		want int
	}{
		{0, 0},
		{89.999999, 0},
		{90, 1},
		{180, 2},
		{270, 3},
		{359.999999, 3},
	}
	for _, tc := range tests {
		if got := WedgeIndex(tc.deg, 4); got != tc.want {
			t.Fatalf("WedgeIndex(%v, 4) = %d, want %d", tc.deg, got, tc.want)
		}
	}
}

func TestWedgeIndexNoItems(t *testing.T) {
	if got := WedgeIndex(45, 0); got != -1 {
		t.Fatalf("WedgeIndex with zero wedges = %d, want -1", got)
	}
}

func TestHitTestRegions(t *testing.T) {
	ring := Ring{CenterRadius: 40, OuterRadius: 120}
	tests := []struct {
		name string
		x, y float64
		want Hit
	}{
		{name: "center", x: 10, y: 10, want: Hit{Kind: HitCenter}},
		{name: "outside", x: 300, y: 0, want: Hit{Kind: HitOutside}},
		{name: "wedge up", x: 0, y: -80, want: Hit{Kind: HitWedge, Index: 0}},
		{name: "wedge right", x: 80, y: 1, want: Hit{Kind: HitWedge, Index: 1}},
		{name: "wedge down", x: 0, y: 80, want: Hit{Kind: HitWedge, Index: 2}},
		{name: "wedge left", x: -80, y: 1, want: Hit{Kind: HitWedge, Index: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HitTest(tc.x, tc.y, 0, 0, ring, 4)
			if got != tc.want {
				t.Fatalf("HitTest(%v, %v) = %+v, want %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestHitTestEmptyLevel(t *testing.T) {
	ring := Ring{CenterRadius: 40, OuterRadius: 120}
	if got := HitTest(0, -80, 0, 0, ring, 0); got.Kind != HitNone {
		t.Fatalf("HitTest with no wedges = %+v, want HitNone", got)
	}
}

func TestPrioritySpanMonotonic(t *testing.T) {
	ring := Ring{CenterRadius: 40, OuterRadius: 120}
	prevSpan := 0.0
	for p := 0; p <= 10; p++ {
		inner, outer := WedgeSpan(ring, p)
		span := outer - inner
		if span <= prevSpan && p > 0 {
			t.Fatalf("priority %d span %v not greater than priority %d span %v", p, span, p-1, prevSpan)
		}
		prevSpan = span
	}
}

func TestWedgeSpanSymmetric(t *testing.T) {
	ring := Ring{CenterRadius: 40, OuterRadius: 120}
	inner, outer := WedgeSpan(ring, 10)
	growOut := outer - ring.OuterRadius
	growIn := ring.CenterRadius - inner
	if math.Abs(growOut-growIn) > 1e-9 {
		t.Fatalf("span grew asymmetrically: inward %v, outward %v", growIn, growOut)
	}
}

func TestPriorityMultiplierClamped(t *testing.T) {
	if got := PriorityMultiplier(-5); got != 1.0 {
		t.Fatalf("PriorityMultiplier(-5) = %v, want 1.0", got)
	}
	if got := PriorityMultiplier(99); got != 1.2 {
		t.Fatalf("PriorityMultiplier(99) = %v, want 1.2", got)
	}
}

func TestLabelAnchorMidpoint(t *testing.T) {
	ring := Ring{CenterRadius: 40, OuterRadius: 120}
	// Wedge 1 of 4 spans [90°, 180°); its midpoint at 135° sits down-right
	// of center.
	x, y := LabelAnchor(100, 100, ring, 1, 4, 0)
	if x <= 100 || y <= 100 {
		t.Fatalf("anchor for wedge 1 should be down-right of center, got (%v, %v)", x, y)
	}
	r := math.Hypot(x-100, y-100)
	want := (ring.OuterRadius + ring.CenterRadius) / 2
	if math.Abs(r-want) > 1e-9 {
		t.Fatalf("anchor radius = %v, want %v", r, want)
	}
}

func TestInWedge(t *testing.T) {
	if !InWedge(45, 0, 4) {
		t.Fatalf("45° should fall inside wedge 0 of 4")
	}
	if InWedge(45, 1, 4) {
		t.Fatalf("45° should not fall inside wedge 1 of 4")
	}
}
