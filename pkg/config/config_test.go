package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/radial/pkg/menu"
)

// chdirTemp moves the test into a fresh directory so relative config paths
// fall under the allowed current-working-directory rule.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFromFileFull(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
radius: 200
inner-radius: 60
animation-speed: "2x"
auto-close-milliseconds: 3000
background-color: "#222222d9"
hover-color: "#4c80cc"
items:
  - label: Browser
    command: firefox
    hotkey: Ctrl+b
  - label: Tools
    submenu:
      - label: Top
        command: htop
        priority: 5
        notify: true
`)

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if cfg.Radius != 200 || cfg.CenterRadius != 60 {
		t.Fatalf("geometry = %d/%d, want 200/60", cfg.Radius, cfg.CenterRadius)
	}
	if cfg.AnimationSpeed != time.Second {
		t.Fatalf("animation speed = %v, want 1s", cfg.AnimationSpeed)
	}
	if cfg.AutoClose != 3*time.Second {
		t.Fatalf("auto close = %v, want 3s", cfg.AutoClose)
	}
	if !cfg.Theme.Hover.IsSet() || cfg.Theme.Hover.Hex() != "#4c80cc" {
		t.Fatalf("hover color = %+v", cfg.Theme.Hover)
	}

	if len(cfg.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(cfg.Items))
	}
	if cfg.Items[0].Hotkey != "Ctrl+b" {
		t.Fatalf("hotkey = %q", cfg.Items[0].Hotkey)
	}
	tools := cfg.Items[1]
	if !tools.HasChildren() || len(tools.Children) != 1 {
		t.Fatalf("submenu not parsed: %+v", tools)
	}
	top := tools.Children[0]
	if top.Priority != 5 || !top.Notify {
		t.Fatalf("child = %+v", top)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFromFileClampsGeometry(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
radius: 9999
inner-radius: 1
items:
  - label: A
    command: firefox
`)
	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if cfg.Radius != MaxRadius {
		t.Fatalf("radius = %d, want clamped to %d", cfg.Radius, MaxRadius)
	}
	if cfg.CenterRadius != MinCenterRadius {
		t.Fatalf("center radius = %d, want clamped to %d", cfg.CenterRadius, MinCenterRadius)
	}
}

func TestFromFileDropsInvalidItems(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
items:
  - label: Good
    command: firefox
  - label: NoCommand
  - command: no-label
  - label: EmptySubmenu
    submenu: []
  - label: AlsoGood
    command: nautilus
`)
	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if len(cfg.Items) != 2 {
		t.Fatalf("items = %d, want the 2 valid survivors", len(cfg.Items))
	}
	if cfg.Items[0].Label != "Good" || cfg.Items[1].Label != "AlsoGood" {
		t.Fatalf("survivors = %q, %q", cfg.Items[0].Label, cfg.Items[1].Label)
	}
}

func TestFromFileTotalLimitDropsEverything(t *testing.T) {
	dir := chdirTemp(t)
	var b strings.Builder
	b.WriteString("items:\n")
	// 50 branches of 4 leaves each: 250 items, past the 200 cap.
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "  - label: L%d\n    submenu:\n", i)
		for j := 0; j < 4; j++ {
			fmt.Fprintf(&b, "      - label: L%d-%d\n        command: firefox\n", i, j)
		}
	}
	path := writeConfig(t, dir, b.String())

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if len(cfg.Items) != 0 {
		t.Fatalf("over-limit config must drop all items, kept %d", len(cfg.Items))
	}
}

func TestFromFileDepthLimit(t *testing.T) {
	dir := chdirTemp(t)
	var b strings.Builder
	b.WriteString("items:\n")
	indent := "  "
	for d := 0; d < MaxDepth+2; d++ {
		fmt.Fprintf(&b, "%s- label: D%d\n", indent, d)
		fmt.Fprintf(&b, "%s  submenu:\n", indent)
		indent += "    "
	}
	fmt.Fprintf(&b, "%s- label: bottom\n%s  command: firefox\n", indent, indent)
	path := writeConfig(t, dir, b.String())

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got := menu.Flatten(cfg.Items).MaxDepth(); got >= MaxDepth {
		t.Fatalf("depth = %d, want below the limit %d", got, MaxDepth)
	}
}

func TestFromFileRejectsDisallowedPath(t *testing.T) {
	_, err := FromFile("/etc/radial-config.yaml")
	if !errors.Is(err, ErrPathNotAllowed) {
		t.Fatalf("err = %v, want ErrPathNotAllowed", err)
	}
}

func TestFromFileRejectsOversizedFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, make([]byte, MaxConfigFileSize+1), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := FromFile(path); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestValidateRejectsBlacklistedCommand(t *testing.T) {
	cfg := Default()
	cfg.Items = []menu.Item{menu.Leaf("Danger", "sudo rm -rf /", "")}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("blacklisted command must fail validation")
	}
}

func TestValidateRequiresItems(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); !errors.Is(err, ErrNoItems) {
		t.Fatalf("err = %v, want ErrNoItems", err)
	}
}

func TestParseAnimationSpeed(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "", want: BaseAnimationSpeed},
		{in: "750", want: 750 * time.Millisecond},
		{in: "2x", want: time.Second},
		{in: "0.5x", want: 250 * time.Millisecond},
		{in: "100X", want: MaxAnimationSpeed},
		{in: "10", want: MinAnimationSpeed},
		{in: "99999", want: MaxAnimationSpeed},
		{in: "fast", want: BaseAnimationSpeed},
		{in: "x", want: BaseAnimationSpeed},
	}
	for _, tc := range tests {
		if got := ParseAnimationSpeed(tc.in); got != tc.want {
			t.Fatalf("ParseAnimationSpeed(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestThemeOverrideInheritsFromParent(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
hover-color: "#ff0000"
items:
  - label: Styled
    command: firefox
    background-color: "#00ff00"
`)
	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	item := cfg.Items[0]
	if item.ThemeOverride == nil {
		t.Fatalf("theme keys should produce an override")
	}
	eff := item.EffectiveTheme(cfg.Theme)
	if eff.Background.Hex() != "#00ff00" {
		t.Fatalf("override background = %q", eff.Background.Hex())
	}
	if eff.Hover.Hex() != "#ff0000" {
		t.Fatalf("unset override hover should inherit, got %q", eff.Hover.Hex())
	}
}

func TestThemeOverrideNeedsWedgeColorKey(t *testing.T) {
	// center-color and font-size on an item do not create a per-item
	// theme; only the four wedge color keys do.
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
items:
  - label: Plain
    command: firefox
    center-color: "#00ff00"
    font-size: 18
  - label: Styled
    command: firefox
    font-color: "#00ff00"
`)
	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if cfg.Items[0].ThemeOverride != nil {
		t.Fatalf("center-color/font-size alone produced an override")
	}
	if cfg.Items[1].ThemeOverride == nil {
		t.Fatalf("font-color should produce an override")
	}
}

func TestConfigPathAllowList(t *testing.T) {
	if IsConfigPathAllowed("/etc/passwd") {
		t.Fatalf("/etc/passwd must not be an allowed config path")
	}
	if !IsConfigPathAllowed("config.yaml") {
		t.Fatalf("a file under the working directory should be allowed")
	}
	if !IsConfigPathAllowed(filepath.Join(ConfigDir(), "config.yaml")) {
		t.Fatalf("the primary config location should be allowed")
	}
}
