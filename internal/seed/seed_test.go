package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/chorechart/internal/model"
)

func TestDefaultFixtures(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	require.Len(t, d.Users, 5)
	require.Len(t, d.Chores, 14)

	mom := d.Users[0]
	assert.Equal(t, "u1", mom.ID)
	assert.Equal(t, "Mom", mom.Name)
	assert.Equal(t, 15, mom.ChoresDone)
	assert.Equal(t, 1200, mom.TotalPoints)
	assert.Equal(t, model.RoleParent, mom.Role)
	assert.Equal(t, 5000, mom.RewardGoalPoints)

	walk := d.Chores[0]
	assert.Equal(t, "c1", walk.ID)
	assert.Equal(t, "u3", walk.AssigneeID)
	assert.True(t, walk.Completed)
	assert.Equal(t, []string{"M", "W", "F"}, walk.Repeat)
	assert.Equal(t, model.ChoreDaily, walk.Type)
	assert.Equal(t, time.Date(2023, 10, 24, 17, 0, 0, 0, time.UTC), walk.DueDate.UTC())

	completed := 0
	for _, c := range d.Chores {
		if c.Completed {
			completed++
		}
	}
	assert.Equal(t, 4, completed)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Users, 5)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	err := os.WriteFile(path, []byte(`
users:
  - id: a
    name: Ana
chores:
  - id: x
    title: Dust
    assignee_id: a
    points: 5
    type: weekly
    repeat: [S]
`), 0o644)
	require.NoError(t, err)

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Users, 1)
	require.Len(t, d.Chores, 1)
	assert.Equal(t, model.RoleOther, d.Users[0].EffectiveRole())
	assert.Equal(t, 5, d.Chores[0].Points)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "users:\n  - id: a\n    name: Ana\n    nickname: A\n"},
		{"missing name", "users:\n  - id: a\n"},
		{"duplicate user", "users:\n  - id: a\n    name: Ana\n  - id: a\n    name: Bo\n"},
		{"duplicate chore", "chores:\n  - {id: x, title: A, type: daily}\n  - {id: x, title: B, type: daily}\n"},
		{"bad type", "chores:\n  - {id: x, title: A, type: monthly}\n"},
		{"bad repeat token", "chores:\n  - {id: x, title: A, type: daily, repeat: [Q]}\n"},
		{"negative points", "chores:\n  - {id: x, title: A, type: daily, points: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
