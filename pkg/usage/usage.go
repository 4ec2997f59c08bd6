// Package usage persists per-item invocation counters across sessions and
// answers the "most used root item" shortcut query.
package usage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// HighlightThreshold is the count at which an item qualifies for the
// most-used highlight.
const HighlightThreshold = 10

// Entry is one persisted counter.
type Entry struct {
	MenuPath string    `json:"menu_path"`
	Label    string    `json:"label"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Tracker counts invocation frequency per (menu path, item label). Load and
// Save touch disk only at session boundaries; recording is in-memory.
type Tracker struct {
	d       *diskv.Diskv
	entries map[string]*Entry
	dirty   map[string]struct{}
}

// NewTracker builds a tracker backed by a diskv store rooted at basePath.
func NewTracker(basePath string) *Tracker {
	return &Tracker{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 64 * 1024,
		}),
		entries: make(map[string]*Entry),
		dirty:   make(map[string]struct{}),
	}
}

// Load reads all persisted counters. A missing or partially unreadable
// store is not fatal; unreadable keys are skipped.
func (t *Tracker) Load(ctx context.Context) bool {
	ok := true
	for key := range t.d.Keys(ctx.Done()) {
		raw, err := t.d.Read(key)
		if err != nil {
			ok = false
			continue
		}
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			ok = false
			continue
		}
		t.entries[key] = &e
	}
	return ok
}

// Save writes every counter touched this session.
func (t *Tracker) Save() bool {
	ok := true
	for key := range t.dirty {
		e := t.entries[key]
		data, err := json.Marshal(e)
		if err != nil {
			ok = false
			continue
		}
		if err := t.d.Write(key, data); err != nil {
			ok = false
		}
	}
	t.dirty = make(map[string]struct{})
	return ok
}

// Record increments the counter for label reached through menuPath.
func (t *Tracker) Record(label string, menuPath []string) {
	key := toKey(label, menuPath)
	e, found := t.entries[key]
	if !found {
		e = &Entry{MenuPath: strings.Join(menuPath, "/"), Label: label}
		t.entries[key] = e
	}
	e.Count++
	e.LastUsed = time.Now()
	t.dirty[key] = struct{}{}
}

// Count returns the recorded count for label under menuPath.
func (t *Tracker) Count(label string, menuPath []string) int {
	if e, ok := t.entries[toKey(label, menuPath)]; ok {
		return e.Count
	}
	return 0
}

// MostUsedRootItem returns the label of the root-level item with the
// highest count, when one exists and the count meets the threshold.
func (t *Tracker) MostUsedRootItem() (string, bool) {
	best := ""
	bestCount := 0
	for _, e := range t.entries {
		if e.MenuPath != "" {
			continue
		}
		if e.Count > bestCount {
			best = e.Label
			bestCount = e.Count
		}
	}
	if best == "" || bestCount < HighlightThreshold {
		return "", false
	}
	return best, true
}

// ShouldHighlight reports whether a root item earned the usage highlight.
func (t *Tracker) ShouldHighlight(label string) bool {
	most, ok := t.MostUsedRootItem()
	return ok && most == label
}

// All returns every entry, for the stats command.
func (t *Tracker) All() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, *e)
	}
	return out
}

// toKey makes a filesystem-safe key from the path and label. Labels are
// user-controlled, so they are encoded rather than sanitized.
func toKey(label string, menuPath []string) string {
	full := append(append([]string{}, menuPath...), label)
	encoded := make([]string, len(full))
	for i, part := range full {
		encoded[i] = base64.RawURLEncoding.EncodeToString([]byte(part))
	}
	return fmt.Sprintf("u-%s", strings.Join(encoded, "."))
}
