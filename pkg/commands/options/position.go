package options

import (
	"fmt"
	"strconv"
)

// PositionOptions carries the optional screen origin given as positional
// x y arguments.
type PositionOptions struct {
	X, Y      int
	HasOrigin bool
}

// ParsePosition fills o from the positional arguments. Zero arguments
// means "open at the current pointer position"; anything other than two
// integers is an error.
func ParsePosition(args []string, o *PositionOptions) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("x must be an integer, got %q", args[0])
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("y must be an integer, got %q", args[1])
		}
		o.X, o.Y, o.HasOrigin = x, y, true
		return nil
	default:
		return fmt.Errorf("expected zero or two positional arguments (x y), got %d", len(args))
	}
}
