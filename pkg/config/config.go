// Package config loads and validates the radial menu configuration from
// YAML (via viper) or from the --cli item syntax, enforcing the security
// limits and the command-safety pipeline before anything reaches the menu.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/radial/pkg/menu"
	"tableflip.dev/radial/pkg/safety"
	"tableflip.dev/radial/pkg/theme"
)

// Security limits applied while parsing configuration files.
const (
	MaxConfigFileSize = 1024 * 1024 // bytes
	MaxDepth          = 10
	MaxItemsPerLevel  = 50
	MaxTotalItems     = 200
)

// Geometry and timing bounds.
const (
	MinRadius = 50
	MaxRadius = 500

	MinCenterRadius = 10
	MaxCenterRadius = 200

	DefaultRadius       = 120
	DefaultCenterRadius = 40

	// BaseAnimationSpeed anchors the "Nx" multiplier syntax.
	BaseAnimationSpeed = 500 * time.Millisecond
	MinAnimationSpeed  = 100 * time.Millisecond
	MaxAnimationSpeed  = 5 * time.Second

	MaxAutoClose = 60 * time.Second
)

// Config is the validated configuration tree the engine consumes.
type Config struct {
	Radius         int
	CenterRadius   int
	Items          []menu.Item
	Theme          theme.Theme
	AnimationSpeed time.Duration
	AutoClose      time.Duration
}

// Errors surfaced by the loader.
var (
	ErrNoItems        = errors.New("config: no valid items configured")
	ErrPathNotAllowed = errors.New("config: file path not allowed")
	ErrFileTooLarge   = errors.New("config: file exceeds size limit")
)

// Default returns a config with defaults and no items.
func Default() Config {
	return Config{
		Radius:         DefaultRadius,
		CenterRadius:   DefaultCenterRadius,
		Theme:          theme.Default(),
		AnimationSpeed: BaseAnimationSpeed,
	}
}

// FromFile loads a YAML config. Invalid items are dropped with their
// siblings still processed; exceeding the total-item limit drops the whole
// configuration.
func FromFile(path string) (Config, error) {
	cfg := Default()

	if !IsConfigPathAllowed(path) {
		return cfg, fmt.Errorf("%w: %s", ErrPathNotAllowed, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > MaxConfigFileSize {
		return cfg, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if v.IsSet("radius") {
		cfg.Radius = clampInt(v.GetInt("radius"), MinRadius, MaxRadius)
	}
	switch {
	case v.IsSet("inner-radius"):
		cfg.CenterRadius = clampInt(v.GetInt("inner-radius"), MinCenterRadius, MaxCenterRadius)
	case v.IsSet("center_radius"):
		cfg.CenterRadius = clampInt(v.GetInt("center_radius"), MinCenterRadius, MaxCenterRadius)
	}

	cfg.Theme = themeFromSettings(v.AllSettings(), theme.Default())

	if v.IsSet("animation-speed") {
		cfg.AnimationSpeed = ParseAnimationSpeed(v.GetString("animation-speed"))
	}
	if v.IsSet("auto-close-milliseconds") {
		ms := clampInt(v.GetInt("auto-close-milliseconds"), 0, int(MaxAutoClose/time.Millisecond))
		cfg.AutoClose = time.Duration(ms) * time.Millisecond
	}

	if raw, ok := v.Get("items").([]interface{}); ok {
		cfg.Items = parseItems(raw, cfg.Theme, 0)
	}

	if total := menu.Flatten(cfg.Items).Len(); total > MaxTotalItems {
		slog.Error("configuration rejected", "reason", "total item limit exceeded",
			"total", total, "limit", MaxTotalItems)
		cfg.Items = nil
	}

	return cfg, nil
}

// Validate applies the final checks after loading: geometry sanity, at
// least one valid item, and the command-safety pipeline on every leaf.
func (c Config) Validate() error {
	if c.Radius < 1 {
		return fmt.Errorf("config: invalid radius %d", c.Radius)
	}
	if c.CenterRadius < 1 {
		return fmt.Errorf("config: invalid center radius %d", c.CenterRadius)
	}
	if len(c.Items) == 0 {
		return ErrNoItems
	}

	arena := menu.Flatten(c.Items)
	for i := 0; i < arena.Len(); i++ {
		node, _ := arena.Node(i)
		item := node.Item
		if !item.IsValid() {
			return fmt.Errorf("config: invalid item %q", item.Label)
		}
		if item.HasChildren() {
			continue
		}
		if err := safety.Validate(item.Command); err != nil {
			var violation *safety.SecurityViolation
			if errors.As(err, &violation) {
				slog.Error("security violation in configuration",
					"item", item.Label, "command", item.Command, "reason", violation.Reason)
			}
			return fmt.Errorf("config: item %q: %w", item.Label, err)
		}
	}
	return nil
}

func parseItems(raw []interface{}, parent theme.Theme, depth int) []menu.Item {
	items := make([]menu.Item, 0, len(raw))
	for _, entry := range raw {
		if len(items) >= MaxItemsPerLevel {
			slog.Warn("menu item limit reached, skipping remaining items",
				"limit", MaxItemsPerLevel, "depth", depth)
			break
		}
		node, ok := toStringMap(entry)
		if !ok {
			continue
		}
		item, ok := parseItem(node, parent, depth)
		if !ok || !item.IsValid() {
			continue
		}
		items = append(items, item)
	}
	return items
}

func parseItem(node map[string]interface{}, parent theme.Theme, depth int) (menu.Item, bool) {
	if depth >= MaxDepth {
		slog.Error("submenu nesting limit reached", "limit", MaxDepth)
		return menu.Item{}, false
	}

	label := getString(node, "label")
	if label == "" {
		slog.Warn("item missing label, skipping")
		return menu.Item{}, false
	}

	item := menu.Item{
		Label:       label,
		Command:     getString(node, "command"),
		Description: getString(node, "description"),
		Icon:        getString(node, "icon"),
		Hotkey:      getString(node, "hotkey"),
		Priority:    menu.ClampPriority(getInt(node, "priority")),
		Notify:      getBool(node, "notify"),
	}

	if hasThemeKeys(node) {
		t := themeFromSettings(node, theme.Theme{FontSize: theme.DefaultFontSize})
		item.ThemeOverride = &t
	}

	if raw, ok := node["submenu"].([]interface{}); ok {
		effective := item.EffectiveTheme(parent)
		item.Children = parseItems(raw, effective, depth+1)
		if len(item.Children) == 0 {
			slog.Warn("item has an empty submenu, skipping", "item", label)
			return menu.Item{}, false
		}
		item.Command = ""
		return item, true
	}

	if strings.TrimSpace(item.Command) == "" {
		slog.Warn("item missing command, skipping", "item", label)
		return menu.Item{}, false
	}
	return item, true
}

// themeFromSettings reads the theme keys out of a settings map. Fields not
// present stay as they are in base.
func themeFromSettings(m map[string]interface{}, base theme.Theme) theme.Theme {
	t := base
	if s := getString(m, "background-color"); s != "" {
		t.Background = theme.ParseHex(s)
	}
	if s := getString(m, "hover-color"); s != "" {
		t.Hover = theme.ParseHex(s)
	}
	if s := getString(m, "border-color"); s != "" {
		t.Border = theme.ParseHex(s)
	}
	if s := getString(m, "font-color"); s != "" {
		t.Font = theme.ParseHex(s)
	}
	if s := getString(m, "center-color"); s != "" {
		t.Center = theme.ParseHex(s)
	}
	if n := getInt(m, "font-size"); n > 0 {
		t.FontSize = n
	}
	return t
}

// hasThemeKeys gates the per-item theme override on the four wedge color
// keys; center-color and font-size alone do not create an override.
func hasThemeKeys(m map[string]interface{}) bool {
	for _, k := range []string{"background-color", "hover-color", "border-color", "font-color"} {
		if _, ok := lookup(m, k); ok {
			return true
		}
	}
	return false
}

// ParseAnimationSpeed accepts either raw milliseconds ("750") or a
// multiplier of the 500ms base ("1.5x"), clamped to [100ms, 5s]. Malformed
// input keeps the default.
func ParseAnimationSpeed(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return BaseAnimationSpeed
	}

	if strings.HasSuffix(s, "x") || strings.HasSuffix(s, "X") {
		mult, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return BaseAnimationSpeed
		}
		ms := clampInt(int(float64(BaseAnimationSpeed/time.Millisecond)*mult),
			int(MinAnimationSpeed/time.Millisecond), int(MaxAnimationSpeed/time.Millisecond))
		return time.Duration(ms) * time.Millisecond
	}

	ms, err := strconv.Atoi(s)
	if err != nil {
		return BaseAnimationSpeed
	}
	ms = clampInt(ms, int(MinAnimationSpeed/time.Millisecond), int(MaxAnimationSpeed/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

// map helpers tolerant of viper's key-case handling

func toStringMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func lookup(m map[string]interface{}, key string) (interface{}, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := lookup(m, key); ok {
		switch s := v.(type) {
		case string:
			return s
		case fmt.Stringer:
			return s.String()
		case int:
			return strconv.Itoa(s)
		}
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if v, ok := lookup(m, key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				return i
			}
		}
	}
	return 0
}

func getBool(m map[string]interface{}, key string) bool {
	if v, ok := lookup(m, key); ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			parsed, err := strconv.ParseBool(b)
			return err == nil && parsed
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
