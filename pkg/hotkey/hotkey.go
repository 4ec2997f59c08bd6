// Package hotkey normalizes key-chord strings and resolves live key events
// to item indices within the currently visible menu level.
package hotkey

import (
	"strings"
)

// Mod is a bitmask of modifier keys.
type Mod uint8

const (
	// ModCtrl matches the Control key.
	ModCtrl Mod = 1 << iota
	// ModAlt matches the Alt key.
	ModAlt
	// ModShift matches the Shift key.
	ModShift
	// ModSuper matches the Super/Win/Meta key.
	ModSuper

	// ModLock covers Caps Lock and Num Lock. Lock state is stripped from
	// both bindings and live events before comparison.
	ModLock Mod = 1 << 7
)

// modNames maps chord tokens (upper-cased) to modifier bits.
var modNames = map[string]Mod{
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"ALT":     ModAlt,
	"SHIFT":   ModShift,
	"SUPER":   ModSuper,
	"WIN":     ModSuper,
	"META":    ModSuper,
}

// namedKeys are the non-rune base keys a chord may reference. Lookup is
// case-insensitive through normalizeKey.
var namedKeys = map[string]string{
	"ESC":       "escape",
	"ESCAPE":    "escape",
	"ENTER":     "enter",
	"RETURN":    "enter",
	"SPACE":     "space",
	"TAB":       "tab",
	"BACKSPACE": "backspace",
	"DELETE":    "delete",
	"DEL":       "delete",
	"UP":        "up",
	"DOWN":      "down",
	"LEFT":      "left",
	"RIGHT":     "right",
	"HOME":      "home",
	"END":       "end",
	"PGUP":      "pgup",
	"PAGEUP":    "pgup",
	"PGDOWN":    "pgdown",
	"PAGEDOWN":  "pgdown",
	"F1":        "f1", "F2": "f2", "F3": "f3", "F4": "f4",
	"F5": "f5", "F6": "f6", "F7": "f7", "F8": "f8",
	"F9": "f9", "F10": "f10", "F11": "f11", "F12": "f12",
}

// Binding is a normalized chord: an ordered modifier set plus a base key.
type Binding struct {
	Combo string // original chord string, for display hints
	Key   string // normalized base key
	Mods  Mod
}

// Event is a live key event after the presentation layer translated it.
type Event struct {
	Key  string
	Mods Mod
}

// Parse normalizes a chord string such as "Ctrl+Shift+a". Every token before
// the last is a modifier; the last is the base key. Unknown modifiers are
// ignored. An empty base key yields ok == false.
func Parse(chord string) (Binding, bool) {
	b := Binding{Combo: chord}
	parts := strings.Split(chord, "+")
	if len(parts) == 0 {
		return b, false
	}

	for _, mod := range parts[:len(parts)-1] {
		if m, ok := modNames[strings.ToUpper(strings.TrimSpace(mod))]; ok {
			b.Mods |= m
		}
	}
	b.Mods &^= ModLock

	b.Key = normalizeKey(parts[len(parts)-1])
	if b.Key == "" {
		return b, false
	}
	return b, true
}

// NormalizeKey resolves a base-key token through the named-key table, for
// presentation layers translating toolkit key names into event form.
func NormalizeKey(token string) string {
	return normalizeKey(token)
}

// normalizeKey resolves a base-key token: named keys first, then a
// case-insensitive retry, then single runes lower-cased so "a" and "A"
// bind identically when no Shift modifier is given.
func normalizeKey(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if k, ok := namedKeys[token]; ok {
		return k
	}
	if k, ok := namedKeys[strings.ToUpper(token)]; ok {
		return k
	}
	r := []rune(token)
	if len(r) == 1 {
		return strings.ToLower(token)
	}
	// Unrecognized multi-rune token: keep it lower-cased so a binding and
	// an identically spelled event still match each other.
	return strings.ToLower(token)
}

// Matches reports whether the live event activates the binding. Lock
// modifiers are masked on both sides; single-letter keys compare
// case-insensitively.
func (b Binding) Matches(ev Event) bool {
	if b.Mods != ev.Mods&^ModLock {
		return false
	}
	if b.Key == ev.Key {
		return true
	}
	return strings.ToUpper(b.Key) == strings.ToUpper(normalizeKey(ev.Key))
}

// Resolver maps chords to item indices for one visible menu level. It is
// rebuilt on every navigation transition.
type Resolver struct {
	bindings []indexedBinding
	byIndex  map[int]Binding
}

type indexedBinding struct {
	binding Binding
	index   int
}

// Build constructs a resolver from the chords of the visible level. The
// chords slice is index-aligned with the level's items; empty chords are
// skipped. Cost is O(level size).
func Build(chords []string) *Resolver {
	r := &Resolver{byIndex: make(map[int]Binding)}
	for i, chord := range chords {
		if strings.TrimSpace(chord) == "" {
			continue
		}
		b, ok := Parse(chord)
		if !ok {
			continue
		}
		r.bindings = append(r.bindings, indexedBinding{binding: b, index: i})
		r.byIndex[i] = b
	}
	return r
}

// Find returns the item index bound to the event, if any.
func (r *Resolver) Find(ev Event) (int, bool) {
	for _, ib := range r.bindings {
		if ib.binding.Matches(ev) {
			return ib.index, true
		}
	}
	return 0, false
}

// Hint returns the original chord string bound to item index, for display.
func (r *Resolver) Hint(index int) string {
	if b, ok := r.byIndex[index]; ok {
		return b.Combo
	}
	return ""
}

// Len returns the number of active bindings.
func (r *Resolver) Len() int {
	return len(r.bindings)
}
