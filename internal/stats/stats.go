// Package stats derives point totals, rankings and reward progress from the
// users and chores. Nothing here writes back to the stored records.
package stats

import (
	"math"
	"slices"

	"github.com/dukerupert/chorechart/internal/model"
)

const (
	// CompletedOffset is added to the household's completed-chore count.
	CompletedOffset = 118
	// DefaultGoalPoints stands in for a missing reward goal.
	DefaultGoalPoints = 1000
)

// Totals is a user's baseline counters plus their completed chores.
type Totals struct {
	ChoresDone  int `json:"chores_done"`
	TotalPoints int `json:"total_points"`
}

// TotalsFor adds u's completed chores to the baseline stored on u.
func TotalsFor(u model.User, chores []model.Chore) Totals {
	t := Totals{ChoresDone: u.ChoresDone, TotalPoints: u.TotalPoints}
	for _, c := range chores {
		if c.Completed && c.AssigneeID == u.ID {
			t.ChoresDone++
			t.TotalPoints += c.Points
		}
	}
	return t
}

// Entry is one row of the leaderboard.
type Entry struct {
	Rank int        `json:"rank"`
	User model.User `json:"user"`
	Totals
	Badge int `json:"badge"`
}

type Board struct {
	Entries         []Entry `json:"entries"`
	TotalChoresDone int     `json:"total_chores_done"`
}

// Leaderboard ranks users by chores done, highest first. Ties keep the order
// of users.
func Leaderboard(users []model.User, chores []model.Chore) Board {
	entries := make([]Entry, len(users))
	for i, u := range users {
		t := TotalsFor(u, chores)
		entries[i] = Entry{User: u, Totals: t, Badge: t.TotalPoints / 10}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.ChoresDone - a.ChoresDone
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	total := CompletedOffset
	for _, c := range chores {
		if c.Completed {
			total++
		}
	}
	return Board{Entries: entries, TotalChoresDone: total}
}

// RewardProgress returns points as a whole percentage of goal, capped at 100.
func RewardProgress(points, goal int) int {
	if goal <= 0 {
		goal = DefaultGoalPoints
	}
	p := int(math.Round(float64(points) * 100 / float64(goal)))
	return min(100, max(0, p))
}

// Member summarizes one member for their detail screen.
type Member struct {
	Chores    []model.Chore `json:"chores"`
	Completed int           `json:"completed"`
	Remaining int           `json:"remaining"`
	Totals
	Progress int `json:"progress"`
}

func MemberSummary(u model.User, chores []model.Chore) Member {
	m := Member{Chores: []model.Chore{}, Totals: TotalsFor(u, chores)}
	for _, c := range chores {
		if c.AssigneeID != u.ID {
			continue
		}
		m.Chores = append(m.Chores, c)
		if c.Completed {
			m.Completed++
		}
	}
	m.Remaining = len(m.Chores) - m.Completed
	m.Progress = RewardProgress(m.TotalPoints, u.RewardGoalPoints)
	return m
}

// Pending counts chores not yet completed.
func Pending(chores []model.Chore) int {
	n := 0
	for _, c := range chores {
		if !c.Completed {
			n++
		}
	}
	return n
}
