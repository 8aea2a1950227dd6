package store

import (
	"slices"
	"time"

	"github.com/dukerupert/chorechart/internal/model"
)

type ChoreStore struct {
	chores []model.Chore
	ids    *ids
	now    func() time.Time
}

type ChoreOption func(*ChoreStore)

// WithChoreIDs replaces the id generator. Generated ids that collide with an
// already issued id are skipped.
func WithChoreIDs(gen func() string) ChoreOption {
	return func(s *ChoreStore) { s.ids.gen = gen }
}

// WithClock sets the clock used to stamp due dates.
func WithClock(now func() time.Time) ChoreOption {
	return func(s *ChoreStore) { s.now = now }
}

// NewChoreStore returns a store holding a copy of seed, in seed order.
func NewChoreStore(seed []model.Chore, opts ...ChoreOption) *ChoreStore {
	s := &ChoreStore{
		ids: newIDs(func() string { return NewID("c") }),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.chores = make([]model.Chore, 0, len(seed))
	for _, c := range seed {
		s.ids.reserve(c.ID)
		s.chores = append(s.chores, cloneChore(c))
	}
	return s
}

func cloneChore(c model.Chore) model.Chore {
	c.Repeat = slices.Clone(c.Repeat)
	return c
}

func (s *ChoreStore) indexOf(id string) int {
	return slices.IndexFunc(s.chores, func(c model.Chore) bool { return c.ID == id })
}

// List returns the chores newest first.
func (s *ChoreStore) List() []model.Chore {
	out := make([]model.Chore, len(s.chores))
	for i, c := range s.chores {
		out[i] = cloneChore(c)
	}
	return out
}

func (s *ChoreStore) ListByAssignee(userID string) []model.Chore {
	var out []model.Chore
	for _, c := range s.chores {
		if c.AssigneeID == userID {
			out = append(out, cloneChore(c))
		}
	}
	return out
}

// GetByID returns nil when no chore has the id.
func (s *ChoreStore) GetByID(id string) *model.Chore {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	c := cloneChore(s.chores[i])
	return &c
}

func (s *ChoreStore) Len() int {
	return len(s.chores)
}

// Create prepends a new incomplete chore. Input without a title or an
// assignee is discarded and ok is false.
func (s *ChoreStore) Create(in model.ChoreInput) (*model.Chore, bool) {
	in, ok := ValidChoreInput(in)
	if !ok {
		return nil, false
	}

	c := s.fill(model.Chore{ID: s.ids.next()}, in)
	s.chores = slices.Insert(s.chores, 0, c)
	return s.GetByID(c.ID), true
}

// ValidChoreInput trims in and reports whether it names a title and an
// assignee and carries a known type and non-negative points.
func ValidChoreInput(in model.ChoreInput) (model.ChoreInput, bool) {
	in.Title = trim(in.Title)
	in.AssigneeID = trim(in.AssigneeID)
	return in, validate.Struct(in) == nil
}

// Update replaces every field of the chore except its id and completed flag.
// Unknown ids and input that Create would discard are ignored.
func (s *ChoreStore) Update(id string, in model.ChoreInput) (*model.Chore, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	in, ok := ValidChoreInput(in)
	if !ok {
		return nil, false
	}
	prev := s.chores[i]
	s.chores[i] = s.fill(model.Chore{ID: prev.ID, Completed: prev.Completed}, in)
	return s.GetByID(id), true
}

func (s *ChoreStore) fill(c model.Chore, in model.ChoreInput) model.Chore {
	c.Title = in.Title
	c.Description = in.Description
	c.AssigneeID = in.AssigneeID
	c.Points = in.Points
	c.Type = in.Type
	c.Repeat = model.RepeatFor(in.Type)
	c.DueDate = s.now()
	return c
}

// ToggleComplete flips the completed flag. Unknown ids are ignored.
func (s *ChoreStore) ToggleComplete(id string) (*model.Chore, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	s.chores[i].Completed = !s.chores[i].Completed
	return s.GetByID(id), true
}

// Delete removes the chore and reports whether it existed. Deleting an
// unknown id leaves the collection untouched.
func (s *ChoreStore) Delete(id string) bool {
	n := len(s.chores)
	s.chores = slices.DeleteFunc(s.chores, func(c model.Chore) bool { return c.ID == id })
	return len(s.chores) != n
}
