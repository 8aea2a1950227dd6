package stats

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/chorechart/internal/model"
	"github.com/dukerupert/chorechart/internal/seed"
)

func loadSeed(t *testing.T) seed.Data {
	t.Helper()
	d, err := seed.Default()
	require.NoError(t, err)
	return d
}

func TestLeaderboardSeed(t *testing.T) {
	d := loadSeed(t)

	b := Leaderboard(d.Users, d.Chores)
	require.Len(t, b.Entries, 5)
	assert.Equal(t, 122, b.TotalChoresDone)

	var names []string
	for _, e := range b.Entries {
		names = append(names, e.User.Name)
	}
	// Mom and Leo tie on 15; Mom comes first in the household.
	assert.Equal(t, []string{"Mom", "Leo", "Mia", "Dad", "Adc"}, names)

	leo := b.Entries[1]
	assert.Equal(t, 2, leo.Rank)
	assert.Equal(t, 15, leo.ChoresDone)
	assert.Equal(t, 950, leo.TotalPoints)
	assert.Equal(t, 95, leo.Badge)
}

func TestLeaderboardDoesNotMutateInputs(t *testing.T) {
	d := loadSeed(t)

	first := Leaderboard(d.Users, d.Chores)
	second := Leaderboard(d.Users, d.Chores)
	assert.Equal(t, first, second)

	assert.Equal(t, 12, d.Users[2].ChoresDone)
	assert.Equal(t, 890, d.Users[2].TotalPoints)
	assert.Equal(t, "Leo", d.Users[2].Name)
}

func TestLeaderboardTotalCountsOrphans(t *testing.T) {
	users := []model.User{{ID: "u1", Name: "Mom"}}
	chores := []model.Chore{
		{ID: "c1", AssigneeID: "u1", Points: 10, Completed: true},
		{ID: "c2", AssigneeID: "deleted", Points: 50, Completed: true},
		{ID: "c3", AssigneeID: "u1", Points: 99},
	}

	b := Leaderboard(users, chores)
	assert.Equal(t, CompletedOffset+2, b.TotalChoresDone)
	require.Len(t, b.Entries, 1)
	assert.Equal(t, 1, b.Entries[0].ChoresDone)
	assert.Equal(t, 10, b.Entries[0].TotalPoints)
}

func TestLeaderboardEmpty(t *testing.T) {
	b := Leaderboard(nil, nil)
	assert.Empty(t, b.Entries)
	assert.Equal(t, CompletedOffset, b.TotalChoresDone)
}

func TestRewardProgress(t *testing.T) {
	tests := []struct {
		points, goal, want int
	}{
		{0, 500, 0},
		{250, 500, 50},
		{1, 3, 33},
		{2, 3, 67},
		{900, 500, 100},
		{500, 0, 50},
		{1200, 5000, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RewardProgress(tt.points, tt.goal), "points=%d goal=%d", tt.points, tt.goal)
	}
}

func TestMemberSummary(t *testing.T) {
	d := loadSeed(t)
	leo := d.Users[2]

	m := MemberSummary(leo, d.Chores)
	assert.Len(t, m.Chores, 5)
	assert.Equal(t, 3, m.Completed)
	assert.Equal(t, 2, m.Remaining)
	assert.Equal(t, 15, m.ChoresDone)
	assert.Equal(t, 950, m.TotalPoints)
	assert.Equal(t, 48, m.Progress)
}

func TestMemberSummaryNoChores(t *testing.T) {
	m := MemberSummary(model.User{ID: "u9", Name: "Gran"}, nil)
	assert.NotNil(t, m.Chores)
	assert.Empty(t, m.Chores)
	assert.Equal(t, 0, m.Progress)
}

func TestPending(t *testing.T) {
	d := loadSeed(t)
	assert.Equal(t, 10, Pending(d.Chores))
}

func TestWriteTableGolden(t *testing.T) {
	d := loadSeed(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Leaderboard(d.Users, d.Chores)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "seed_leaderboard", buf.Bytes())
}
