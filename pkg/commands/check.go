package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/radial/pkg/commands/options"
	"tableflip.dev/radial/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	mo := &options.MenuOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a menu config and audit every command against the safety rules.",
		Example: `
radial check
radial check --config ./config.yaml
radial check --cli "Danger::sudo rm -rf /"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := check.Check{
				ConfigPath: mo.ConfigPath,
				CLI:        mo.CLI,
				Out:        cmd.OutOrStdout(),
			}
			return c.Do(context.Background())
		},
	}

	options.AddMenuArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
