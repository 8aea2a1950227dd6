package model

type Role string

const (
	RoleParent Role = "Parent"
	RoleKid    Role = "Kid"
	RoleOther  Role = "Other"
)

// User is a household member. ChoresDone and TotalPoints are the baseline
// counters recorded at creation; they are never updated afterwards.
type User struct {
	ID               string `json:"id" yaml:"id" validate:"required"`
	Name             string `json:"name" yaml:"name" validate:"required"`
	Avatar           string `json:"avatar" yaml:"avatar"`
	Color            string `json:"color" yaml:"color"`
	ChoresDone       int    `json:"chores_done" yaml:"chores_done" validate:"min=0"`
	TotalPoints      int    `json:"total_points" yaml:"total_points" validate:"min=0"`
	Role             Role   `json:"role,omitempty" yaml:"role,omitempty" validate:"omitempty,oneof=Parent Kid Other"`
	RewardGoal       string `json:"reward_goal,omitempty" yaml:"reward_goal,omitempty"`
	RewardGoalPoints int    `json:"reward_goal_points,omitempty" yaml:"reward_goal_points,omitempty" validate:"min=0"`
}

// EffectiveRole treats a missing role as RoleOther.
func (u User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleOther
	}
	return u.Role
}

// UserInput is everything a caller supplies when adding a member.
// Empty optional fields are filled with defaults by the store.
type UserInput struct {
	Name             string `json:"name" validate:"required"`
	Avatar           string `json:"avatar"`
	Color            string `json:"color"`
	Role             Role   `json:"role" validate:"omitempty,oneof=Parent Kid Other"`
	RewardGoal       string `json:"reward_goal"`
	RewardGoalPoints int    `json:"reward_goal_points" validate:"min=0"`
}
