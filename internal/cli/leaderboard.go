package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/chorechart/internal/seed"
	"github.com/dukerupert/chorechart/internal/stats"
)

// LeaderboardOptions holds flags for the leaderboard command.
type LeaderboardOptions struct {
	*RootOptions
	Format string
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeaderboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the leaderboard for the seed data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(opts.SeedPath)
			if err != nil {
				return err
			}
			board := stats.Leaderboard(data.Users, data.Chores)

			out := cmd.OutOrStdout()
			switch opts.Format {
			case "text":
				return stats.WriteTable(out, board)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(board)
			default:
				return fmt.Errorf("invalid format %q: must be text or json", opts.Format)
			}
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	return cmd
}
