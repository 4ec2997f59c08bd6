// Package geometry implements the polar hit-testing and layout math for the
// radial menu: wedge partitioning, priority-based sizing, and label anchors.
package geometry

import "math"

// PriorityStep is the fractional size increase per priority level, so a
// priority-10 item renders 20% larger than a priority-0 item.
const PriorityStep = 0.02

// HitKind classifies where a pointer position falls relative to the menu.
type HitKind int

const (
	// HitNone means no actionable region was hit (e.g. an empty level).
	HitNone HitKind = iota
	// HitCenter means the pointer is inside the center circle.
	HitCenter
	// HitOutside means the pointer is beyond the outer radius.
	HitOutside
	// HitWedge means the pointer landed on a menu wedge.
	HitWedge
)

// Hit is the result of classifying a pointer position.
type Hit struct {
	Kind  HitKind
	Index int // wedge index, valid only when Kind == HitWedge
}

// Ring describes the annulus the menu occupies.
type Ring struct {
	CenterRadius float64
	OuterRadius  float64
}

// Angle computes the clockwise-from-up angle in degrees of the point
// (x, y) relative to the center (cx, cy), normalized to [0, 360). Screen Y
// grows downward, so the mathematical angle is taken as atan2(-dy, dx).
func Angle(x, y, cx, cy float64) float64 {
	dx := x - cx
	dy := y - cy
	rad := math.Atan2(-dy, dx)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	deg := 90 - rad*180/math.Pi
	if deg < 0 {
		deg += 360
	}
	return math.Mod(deg, 360)
}

// HitTest classifies the pointer at (x, y) against a menu of n wedges
// centered at (cx, cy). With n == 0 the annulus yields no hit.
func HitTest(x, y, cx, cy float64, ring Ring, n int) Hit {
	dx := x - cx
	dy := y - cy
	d := math.Hypot(dx, dy)

	if d < ring.CenterRadius {
		return Hit{Kind: HitCenter}
	}
	if d > ring.OuterRadius {
		return Hit{Kind: HitOutside}
	}
	if n <= 0 {
		return Hit{Kind: HitNone}
	}

	idx := WedgeIndex(Angle(x, y, cx, cy), n)
	return Hit{Kind: HitWedge, Index: idx}
}

// WedgeIndex maps a clockwise-from-up angle in degrees to a wedge index for
// an n-way equal partition. An angle exactly on a boundary belongs to the
// wedge it opens, never the one it closes.
func WedgeIndex(deg float64, n int) int {
	if n <= 0 {
		return -1
	}
	step := 360.0 / float64(n)
	idx := int(math.Floor(deg / step))
	if idx >= n { // deg == 360 cannot occur post-normalization, but guard anyway
		idx = n - 1
	}
	return idx
}

// PriorityMultiplier returns the size multiplier for a priority level.
func PriorityMultiplier(priority int) float64 {
	if priority < 0 {
		priority = 0
	}
	if priority > 10 {
		priority = 10
	}
	return 1.0 + float64(priority)*PriorityStep
}

// WedgeSpan returns the inner and outer radii of wedge at the given
// priority. The priority multiplier widens the span symmetrically so the
// wedge grows without shifting its midline.
func WedgeSpan(ring Ring, priority int) (inner, outer float64) {
	adjust := (ring.OuterRadius - ring.CenterRadius) * (PriorityMultiplier(priority) - 1.0) / 2.0
	return ring.CenterRadius - adjust, ring.OuterRadius + adjust
}

// WedgeAngles returns the start and end angles in degrees (clockwise from
// up) of wedge index out of n.
func WedgeAngles(index, n int) (start, end float64) {
	step := 360.0 / float64(n)
	start = float64(index) * step
	return start, start + step
}

// LabelAnchor returns the screen point where wedge index's label or icon is
// centered: the arc midpoint at the priority-scaled mid radius.
func LabelAnchor(cx, cy float64, ring Ring, index, n, priority int) (x, y float64) {
	start, end := WedgeAngles(index, n)
	mid := (start + end) / 2

	r := (ring.OuterRadius + ring.CenterRadius) / 2 * PriorityMultiplier(priority)

	// Convert clockwise-from-up degrees back to screen coordinates.
	rad := (90 - mid) * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

// InWedge reports whether the clockwise-from-up angle deg falls inside
// wedge index of an n-way partition.
func InWedge(deg float64, index, n int) bool {
	return WedgeIndex(deg, n) == index
}
