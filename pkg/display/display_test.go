package display

import "testing"

func TestClampOrigin(t *testing.T) {
	screen := Size{Width: 1920, Height: 1080}
	window := Size{Width: 240, Height: 240}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{name: "centered", in: Point{X: 960, Y: 540}, want: Point{X: 960, Y: 540}},
		{name: "top left corner", in: Point{X: 0, Y: 0}, want: Point{X: 120, Y: 120}},
		{name: "bottom right corner", in: Point{X: 1920, Y: 1080}, want: Point{X: 1800, Y: 960}},
		{name: "left edge only", in: Point{X: 10, Y: 540}, want: Point{X: 120, Y: 540}},
		{name: "off screen", in: Point{X: -500, Y: 5000}, want: Point{X: 120, Y: 960}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampOrigin(tc.in, window, screen, true); got != tc.want {
				t.Fatalf("ClampOrigin(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestClampOriginUnknownScreen(t *testing.T) {
	in := Point{X: -500, Y: 5000}
	if got := ClampOrigin(in, Size{Width: 240, Height: 240}, Size{}, false); got != in {
		t.Fatalf("unknown screen geometry must leave the origin unchanged, got %v", got)
	}
}

func TestWarpPointerNoOpOnWayland(t *testing.T) {
	c := &xdoCapability{wayland: true}
	if c.WarpPointer(Point{X: 10, Y: 10}) {
		t.Fatalf("warping under Wayland must report unsupported")
	}
	if !c.IsWayland() {
		t.Fatalf("IsWayland() = false, want true")
	}
}
