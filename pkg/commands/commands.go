package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/radial/pkg/commands/options"
	"tableflip.dev/radial/pkg/runner/show"
)

func New() *cobra.Command {
	mo := &options.MenuOptions{}
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "radial [x y]",
		Short: "Launch commands from a radial menu anchored at a screen position.",
		Example: `
radial
radial 960 540
radial --cli "Browser:Open firefox:firefox;Files::nautilus"
radial --config ./config.yaml
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return options.ParsePosition(args, po)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := show.Show{
				ConfigPath: mo.ConfigPath,
				CLI:        mo.CLI,
				X:          po.X,
				Y:          po.Y,
				HasOrigin:  po.HasOrigin,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMenuArgs(cmd, mo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCheck(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
}
