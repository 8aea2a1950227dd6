package store

import (
	"math/rand/v2"
	"slices"

	"github.com/dukerupert/chorechart/internal/model"
)

const (
	DefaultColor      = "ring-blue-400"
	DefaultRewardGoal = "Surprise Reward"
	MinGoalPoints     = 500
	MaxGoalPoints     = 2000
)

// AvatarOptions are the avatars a new member is given when none is chosen.
var AvatarOptions = []string{
	"https://images.unsplash.com/photo-1544717305-2782549b5136?fit=facearea&facepad=2&w=256&h=256&q=80",
	"https://images.unsplash.com/photo-1599566150163-29194dcaad36?fit=facearea&facepad=2&w=256&h=256&q=80",
	"https://images.unsplash.com/photo-1494790108377-be9c29b29330?fit=facearea&facepad=2&w=256&h=256&q=80",
	"https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?fit=facearea&facepad=2&w=256&h=256&q=80",
}

// Intner is the source of randomness for member defaults. *rand.Rand
// satisfies it.
type Intner interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type UserStore struct {
	users []model.User
	ids   *ids
	rand  Intner
}

type UserOption func(*UserStore)

func WithUserIDs(gen func() string) UserOption {
	return func(s *UserStore) { s.ids.gen = gen }
}

func WithRand(r Intner) UserOption {
	return func(s *UserStore) { s.rand = r }
}

// NewUserStore returns a store holding a copy of seed, in seed order.
func NewUserStore(seed []model.User, opts ...UserOption) *UserStore {
	s := &UserStore{
		ids:  newIDs(func() string { return NewID("u") }),
		rand: globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.users = make([]model.User, 0, len(seed))
	for _, u := range seed {
		s.ids.reserve(u.ID)
		s.users = append(s.users, u)
	}
	return s
}

// List returns the members in insertion order.
func (s *UserStore) List() []model.User {
	return slices.Clone(s.users)
}

// GetByID returns nil when no member has the id.
func (s *UserStore) GetByID(id string) *model.User {
	i := slices.IndexFunc(s.users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return nil
	}
	u := s.users[i]
	return &u
}

// First returns the earliest member, or nil for an empty household.
func (s *UserStore) First() *model.User {
	if len(s.users) == 0 {
		return nil
	}
	u := s.users[0]
	return &u
}

func (s *UserStore) Len() int {
	return len(s.users)
}

// Create appends a new member with zeroed counters. Input without a name is
// discarded and ok is false.
func (s *UserStore) Create(in model.UserInput) (*model.User, bool) {
	in.Name = trim(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, false
	}

	u := model.User{
		ID:               s.ids.next(),
		Name:             in.Name,
		Avatar:           in.Avatar,
		Color:            in.Color,
		Role:             in.Role,
		RewardGoal:       in.RewardGoal,
		RewardGoalPoints: in.RewardGoalPoints,
	}
	if u.Avatar == "" {
		u.Avatar = AvatarOptions[s.rand.IntN(len(AvatarOptions))]
	}
	if u.Color == "" {
		u.Color = DefaultColor
	}
	if u.RewardGoal == "" {
		u.RewardGoal = DefaultRewardGoal
	}
	if u.RewardGoalPoints == 0 {
		u.RewardGoalPoints = MinGoalPoints + s.rand.IntN(MaxGoalPoints-MinGoalPoints+1)
	}

	s.users = append(s.users, u)
	return &u, true
}
