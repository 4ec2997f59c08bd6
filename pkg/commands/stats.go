package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/radial/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show usage counters for menu items.",
		Example: `
radial stats
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stats.Stats{Out: cmd.OutOrStdout()}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
