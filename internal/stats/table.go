package stats

import (
	"fmt"
	"io"
)

// WriteTable prints the board as plain text.
func WriteTable(w io.Writer, b Board) error {
	if _, err := fmt.Fprintf(w, "Family leaderboard (%d chores done)\n", b.TotalChoresDone); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range b.Entries {
		_, err := fmt.Fprintf(w, "%d. %-10s %3d chores %6d pts  badge %d\n",
			e.Rank, e.User.Name, e.ChoresDone, e.TotalPoints, e.Badge)
		if err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	return nil
}
