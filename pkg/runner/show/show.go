package show

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/radial/pkg/config"
	"tableflip.dev/radial/pkg/display"
	"tableflip.dev/radial/pkg/instance"
	"tableflip.dev/radial/pkg/menu"
	"tableflip.dev/radial/pkg/notify"
	"tableflip.dev/radial/pkg/safety"
	"tableflip.dev/radial/pkg/tui"
	"tableflip.dev/radial/pkg/usage"
)

// Show opens the menu and runs the event loop until the user selects an
// item, dismisses the menu, or the auto-close timer fires.
type Show struct {
	ConfigPath string
	CLI        string

	// Requested origin in screen pixels; clamped to the visible screen
	// before the pointer is warped to it.
	X, Y      int
	HasOrigin bool

	Display  display.Capability
	Notifier notify.Notifier
}

func (s *Show) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("show: stdout is not a terminal")
	}

	cfg, err := s.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lock, err := instance.Acquire()
	if err != nil {
		return fmt.Errorf("show: acquire instance lock: %w", err)
	}
	defer lock.Release()

	tracker := usage.NewTracker(config.UsageDir())
	tracker.Load(ctx)

	if s.HasOrigin {
		s.placePointer(cfg)
	}

	notifier := s.Notifier
	if notifier == nil {
		notifier = notify.NotifySend{}
	}
	executor := &safety.Executor{Timeout: safety.DefaultTimeout}

	execute := func(item menu.Item, path []string) error {
		tracker.Record(item.Label, path)
		if item.Notify {
			return runAndNotify(ctx, executor, notifier, item)
		}
		return executor.Start(item.Command)
	}

	p := tea.NewProgram(
		tui.New(cfg, execute, tracker.MostUsedRootItem),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()

	if !tracker.Save() {
		slog.Warn("usage counters not saved")
	}
	return err
}

func (s *Show) load() (config.Config, error) {
	if s.CLI != "" {
		cfg := config.FromCLI(s.CLI)
		if len(cfg.Items) == 0 {
			return cfg, config.ErrNoItems
		}
		return cfg, nil
	}
	path := s.ConfigPath
	if path == "" {
		found, ok := config.Find()
		if !ok {
			return config.Default(), fmt.Errorf("show: no config file found under %s or the current directory", config.ConfigDir())
		}
		path = found
	}
	return config.FromFile(path)
}

// placePointer clamps the requested origin so the full menu stays on
// screen, then warps the pointer to the adjusted point.
func (s *Show) placePointer(cfg config.Config) {
	cap := s.Display
	if cap == nil {
		cap = display.New()
	}
	window := display.Size{Width: 2 * cfg.Radius, Height: 2 * cfg.Radius}
	screen, ok := cap.ScreenGeometry()
	origin := display.ClampOrigin(display.Point{X: s.X, Y: s.Y}, window, screen, ok)
	if !cap.WarpPointer(origin) {
		slog.Debug("pointer warp unavailable", "origin", origin)
	}
}

// runAndNotify executes the command synchronously and surfaces the
// captured output through a desktop notification.
func runAndNotify(ctx context.Context, executor *safety.Executor, notifier notify.Notifier, item menu.Item) error {
	res, err := executor.Run(ctx, item.Command)
	if err != nil {
		return err
	}
	title := item.Label
	body := res.Stdout
	if !res.Success {
		title = fmt.Sprintf("%s (exit %d)", item.Label, res.ExitCode)
		if res.Stderr != "" {
			body = res.Stderr
		}
	}
	if body == "" {
		body = "(no output)"
	}
	return notifier.Send(title, body)
}
