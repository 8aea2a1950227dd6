package model

import (
	"slices"
	"time"
)

type ChoreType string

const (
	ChoreDaily  ChoreType = "daily"
	ChoreWeekly ChoreType = "weekly"
)

var (
	dailyRepeat  = []string{"M", "T", "W", "T", "F"}
	weeklyRepeat = []string{"S"}
)

// RepeatFor returns the weekday tokens a chore of type t repeats on.
func RepeatFor(t ChoreType) []string {
	if t == ChoreWeekly {
		return slices.Clone(weeklyRepeat)
	}
	return slices.Clone(dailyRepeat)
}

type Chore struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Description string    `json:"description" yaml:"description"`
	AssigneeID  string    `json:"assignee_id" yaml:"assignee_id"`
	DueDate     time.Time `json:"due_date" yaml:"due_date"`
	Points      int       `json:"points" yaml:"points" validate:"min=0"`
	Completed   bool      `json:"completed" yaml:"completed"`
	Repeat      []string  `json:"repeat" yaml:"repeat" validate:"dive,oneof=M T W F S"`
	Type        ChoreType `json:"type" yaml:"type" validate:"oneof=daily weekly"`
}

// ChoreInput is the editable part of a chore. The store stamps the due
// date and derives the repeat days from Type.
type ChoreInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	AssigneeID  string    `json:"assignee_id" validate:"required"`
	Points      int       `json:"points" validate:"min=0"`
	Type        ChoreType `json:"type" validate:"oneof=daily weekly"`
}

// Input returns the editable fields of c, as the edit form is prefilled.
func (c Chore) Input() ChoreInput {
	return ChoreInput{
		Title:       c.Title,
		Description: c.Description,
		AssigneeID:  c.AssigneeID,
		Points:      c.Points,
		Type:        c.Type,
	}
}
