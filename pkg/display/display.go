// Package display is the pointer/screen capability layer. It shells out to
// xdotool on X11 and degrades silently under Wayland compositors, which
// forbid programmatic pointer movement.
package display

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// xdotoolPath is invoked by absolute path so a PATH hijack cannot swap it.
const xdotoolPath = "/usr/bin/xdotool"

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// Size is a screen dimension.
type Size struct {
	Width, Height int
}

// Capability answers pointer and screen queries. Methods that the platform
// cannot support report ok == false rather than an error: an absent
// capability is a fallback path, not a failure.
type Capability interface {
	ScreenGeometry() (Size, bool)
	PointerPosition() (Point, bool)
	WarpPointer(p Point) bool
	IsWayland() bool
}

// New detects the session type and returns the matching capability.
func New() Capability {
	return &xdoCapability{wayland: detectWayland()}
}

func detectWayland() bool {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland")
}

type xdoCapability struct {
	wayland bool
}

func (c *xdoCapability) IsWayland() bool {
	return c.wayland
}

// ScreenGeometry asks xdotool for the display size.
func (c *xdoCapability) ScreenGeometry() (Size, bool) {
	out, err := exec.Command(xdotoolPath, "getdisplaygeometry").Output()
	if err != nil {
		return Size{}, false
	}
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return Size{}, false
	}
	w, err1 := strconv.Atoi(fields[0])
	h, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// PointerPosition asks xdotool for the mouse location.
func (c *xdoCapability) PointerPosition() (Point, bool) {
	out, err := exec.Command(xdotoolPath, "getmouselocation", "--shell").Output()
	if err != nil {
		return Point{}, false
	}
	p := Point{X: -1, Y: -1}
	for _, line := range strings.Split(string(out), "\n") {
		if v, ok := strings.CutPrefix(line, "X="); ok {
			p.X, _ = strconv.Atoi(strings.TrimSpace(v))
		}
		if v, ok := strings.CutPrefix(line, "Y="); ok {
			p.Y, _ = strconv.Atoi(strings.TrimSpace(v))
		}
	}
	if p.X < 0 || p.Y < 0 {
		return Point{}, false
	}
	return p, true
}

// WarpPointer moves the pointer. Under Wayland this is a silent no-op.
func (c *xdoCapability) WarpPointer(p Point) bool {
	if c.wayland {
		return false
	}
	err := exec.Command(xdotoolPath, "mousemove",
		strconv.Itoa(p.X), strconv.Itoa(p.Y)).Run()
	return err == nil
}

// ClampOrigin adjusts a requested menu origin so a window of the given size
// stays fully on screen. It returns the origin unchanged when the screen
// size is unknown.
func ClampOrigin(origin Point, window Size, screen Size, ok bool) Point {
	if !ok {
		return origin
	}
	half := Point{X: window.Width / 2, Y: window.Height / 2}

	if origin.X < half.X {
		origin.X = half.X
	} else if origin.X > screen.Width-half.X {
		origin.X = screen.Width - half.X
	}
	if origin.Y < half.Y {
		origin.Y = half.Y
	} else if origin.Y > screen.Height-half.Y {
		origin.Y = screen.Height - half.Y
	}
	return origin
}

// String renders a point for logs.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
