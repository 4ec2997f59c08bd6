package hotkey

import "testing"

func TestParseChord(t *testing.T) {
	tests := []struct {
		chord string
		key   string
		mods  Mod
		ok    bool
	}{
		{chord: "Ctrl+Shift+a", key: "a", mods: ModCtrl | ModShift, ok: true},
		{chord: "CTRL+SHIFT+A", key: "a", mods: ModCtrl | ModShift, ok: true},
		{chord: "alt+F4", key: "f4", mods: ModAlt, ok: true},
		{chord: "Super+Return", key: "enter", mods: ModSuper, ok: true},
		{chord: "Win+e", key: "e", mods: ModSuper, ok: true},
		{chord: "x", key: "x", mods: 0, ok: true},
		{chord: "Esc", key: "escape", mods: 0, ok: true},
		{chord: "", ok: false},
		{chord: "Ctrl+", ok: false},
	}
	for _, tc := range tests {
		b, ok := Parse(tc.chord)
		if ok != tc.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", tc.chord, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if b.Key != tc.key || b.Mods != tc.mods {
			t.Fatalf("Parse(%q) = {key: %q, mods: %b}, want {key: %q, mods: %b}",
				tc.chord, b.Key, b.Mods, tc.key, tc.mods)
		}
	}
}

func TestCaseInsensitiveBindings(t *testing.T) {
	lower, _ := Parse("Ctrl+Shift+a")
	upper, _ := Parse("CTRL+SHIFT+A")
	if lower.Key != upper.Key || lower.Mods != upper.Mods {
		t.Fatalf("chord case changed the binding: %+v vs %+v", lower, upper)
	}
}

func TestLockModifiersIgnored(t *testing.T) {
	b, _ := Parse("Ctrl+a")
	ev := Event{Key: "a", Mods: ModCtrl | ModLock}
	if !b.Matches(ev) {
		t.Fatalf("caps-lock state should not break the match")
	}
}

func TestMatchRejectsWrongMods(t *testing.T) {
	b, _ := Parse("Ctrl+a")
	if b.Matches(Event{Key: "a", Mods: ModAlt}) {
		t.Fatalf("alt+a should not activate a ctrl+a binding")
	}
	if b.Matches(Event{Key: "a"}) {
		t.Fatalf("bare a should not activate a ctrl+a binding")
	}
}

func TestResolverFind(t *testing.T) {
	r := Build([]string{"Ctrl+b", "", "F2", "bogus+"})
	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	idx, ok := r.Find(Event{Key: "b", Mods: ModCtrl})
	if !ok || idx != 0 {
		t.Fatalf("Find(ctrl+b) = (%d, %v), want (0, true)", idx, ok)
	}
	idx, ok = r.Find(Event{Key: "f2"})
	if !ok || idx != 2 {
		t.Fatalf("Find(f2) = (%d, %v), want (2, true)", idx, ok)
	}
	if _, ok := r.Find(Event{Key: "q"}); ok {
		t.Fatalf("unbound key should not resolve")
	}
}

func TestResolverHint(t *testing.T) {
	r := Build([]string{"Ctrl+b", "F2"})
	if got := r.Hint(0); got != "Ctrl+b" {
		t.Fatalf("Hint(0) = %q, want the original chord", got)
	}
	if got := r.Hint(5); got != "" {
		t.Fatalf("Hint for an unbound index = %q, want empty", got)
	}
}
