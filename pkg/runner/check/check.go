package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/radial/pkg/config"
	"tableflip.dev/radial/pkg/menu"
	"tableflip.dev/radial/pkg/safety"
)

// Check validates a configuration without opening the menu: structure,
// limits, and the command safety audit for every leaf.
type Check struct {
	ConfigPath string
	CLI        string

	Out io.Writer
}

var ErrViolations = errors.New("check: configuration has security violations")

func (c *Check) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if len(cfg.Items) == 0 {
		fmt.Fprintf(out, "%s %v\n", red("✗"), config.ErrNoItems)
		return config.ErrNoItems
	}

	arena := menu.Flatten(cfg.Items)
	violations := 0
	for i := 0; i < arena.Len(); i++ {
		node, _ := arena.Node(i)
		item := node.Item
		if item.HasChildren() {
			fmt.Fprintf(out, "%s %s (%d items)\n", green("▸"), item.Label, len(item.Children))
			continue
		}
		if verr := safety.Validate(item.Command); verr != nil {
			violations++
			reason := verr.Error()
			var sv *safety.SecurityViolation
			if errors.As(verr, &sv) {
				reason = sv.Reason
			}
			fmt.Fprintf(out, "%s %s: %s\n", red("✗"), item.Label, reason)
			fmt.Fprintf(out, "  %s\n", yellow(item.Command))
			continue
		}
		fmt.Fprintf(out, "%s %s: %s\n", green("✓"), item.Label, item.Command)
	}

	if violations > 0 {
		return fmt.Errorf("%w: %d command(s) rejected", ErrViolations, violations)
	}
	fmt.Fprintf(out, "%s %d item(s), all commands pass the safety audit\n", green("✓"), arena.Len())
	return nil
}

func (c *Check) load() (config.Config, error) {
	if c.CLI != "" {
		cfg := config.FromCLI(c.CLI)
		if len(cfg.Items) == 0 {
			return cfg, config.ErrNoItems
		}
		return cfg, nil
	}
	path := c.ConfigPath
	if path == "" {
		found, ok := config.Find()
		if !ok {
			return config.Default(), fmt.Errorf("check: no config file found under %s or the current directory", config.ConfigDir())
		}
		path = found
	}
	return config.FromFile(path)
}
