// Package menu defines the menu item tree and its flattened arena form.
package menu

import (
	"strings"

	"tableflip.dev/radial/pkg/theme"
)

// Item is one node of the menu tree. A branch carries children and ignores
// its command; a leaf carries a command and no children. Anything else is
// invalid and is dropped while the tree is built.
type Item struct {
	Label       string
	Description string
	Command     string
	Children    []Item

	Icon          string
	ThemeOverride *theme.Theme
	Priority      int
	Hotkey        string
	Notify        bool
}

// Leaf builds a command item.
func Leaf(label, command, description string) Item {
	return Item{Label: label, Command: command, Description: description}
}

// Branch builds a submenu item.
func Branch(label string, children []Item, description string) Item {
	return Item{Label: label, Children: children, Description: description}
}

// HasChildren reports whether the item opens a submenu.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// HasIcon reports whether the item declares an icon path.
func (i Item) HasIcon() bool {
	return strings.TrimSpace(i.Icon) != ""
}

// IsValid reports whether the item satisfies the branch-xor-leaf invariant.
func (i Item) IsValid() bool {
	if i.Label == "" {
		return false
	}
	return i.HasChildren() != (strings.TrimSpace(i.Command) == "")
}

// EffectiveTheme resolves the item's theme against the nearest ancestor
// theme. Items without an override draw with the parent theme untouched.
func (i Item) EffectiveTheme(parent theme.Theme) theme.Theme {
	if i.ThemeOverride == nil {
		return parent
	}
	return i.ThemeOverride.Inherit(parent)
}

// ClampPriority bounds a configured priority to the supported 0-10 range.
func ClampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > 10 {
		return 10
	}
	return p
}
