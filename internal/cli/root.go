package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	SeedPath string
}

// NewRootCommand creates the root command for the chorechart CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "chorechart",
		Short: "Family chore chart",
		Long: `Chorechart tracks household chores, points and rewards for a family.

All state lives in memory and is seeded from fixture data at start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.SeedPath, "seed", "", "seed YAML file (default: built-in fixtures)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewLeaderboardCommand(opts))

	return cmd
}
