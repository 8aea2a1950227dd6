// Package nav tracks which screen is visible and resolves what to render.
package nav

import "strings"

type View int

const (
	Home View = iota
	Details
	Leaderboard
	Family
	Settings
	MemberDetails
)

var viewNames = [...]string{
	Home:          "HOME",
	Details:       "DETAILS",
	Leaderboard:   "LEADERBOARD",
	Family:        "FAMILY",
	Settings:      "SETTINGS",
	MemberDetails: "MEMBER_DETAILS",
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return viewNames[Home]
	}
	return viewNames[v]
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseView accepts a view name in any case. Unknown names yield Home and
// false.
func ParseView(s string) (View, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range viewNames {
		if name == s {
			return View(i), true
		}
	}
	return Home, false
}

// State is the navigation state. Selections survive view changes; they only
// matter once the view is Details or MemberDetails again.
type State struct {
	View            View   `json:"view"`
	SelectedChoreID string `json:"selected_chore_id,omitempty"`
	SelectedUserID  string `json:"selected_user_id,omitempty"`
}

// Initial is the state on startup: Home with nothing selected.
func Initial() State {
	return State{View: Home}
}

func (s State) SelectChore(id string) State {
	s.SelectedChoreID = id
	s.View = Details
	return s
}

func (s State) SelectUser(id string) State {
	s.SelectedUserID = id
	s.View = MemberDetails
	return s
}

// Navigate switches to v without touching the selections.
func (s State) Navigate(v View) State {
	s.View = v
	return s
}

// Back always returns to Home; there is no history.
func (s State) Back() State {
	s.View = Home
	return s
}

// ChoreDeleted is applied after any chore delete, whether or not the chore
// existed.
func (s State) ChoreDeleted() State {
	s.View = Home
	s.SelectedChoreID = ""
	return s
}

// ShowNavBar reports whether the navigation bar is shown for the state's
// view. Detail views hide it.
func (s State) ShowNavBar() bool {
	return s.View != Details && s.View != MemberDetails
}
