// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// MenuOptions selects where the menu definition comes from.
type MenuOptions struct {
	ConfigPath string
	CLI        string
}

// AddMenuArgs wires the menu source flags on the provided command.
func AddMenuArgs(cmd *cobra.Command, o *MenuOptions) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "",
		"Path to the menu config file (default: ~/.config/radial/config.yaml, then ./config.yaml).")
	cmd.Flags().StringVar(&o.CLI, "cli", "",
		`Define the menu inline: "title:description:action;title:description:action".`)
}
