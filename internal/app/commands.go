package app

import (
	"strings"

	"github.com/dukerupert/chorechart/internal/model"
	"github.com/dukerupert/chorechart/internal/nav"
	"github.com/dukerupert/chorechart/internal/store"
)

const (
	EntityChore      = "chore"
	EntityUser       = "user"
	EntityNav        = "nav"
	EntityChoreForm  = "chore_form"
	EntityMemberForm = "member_form"
	EntitySettings   = "settings"
)

const (
	// DefaultDescription fills a chore form submitted without a description.
	DefaultDescription = "No description"
	// DefaultPoints is what the chore form offers before the user edits it.
	DefaultPoints = 10
)

// Event reports the outcome of a command. Commands never fail; a command
// that finds nothing to do comes back with Applied false.
type Event struct {
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	ID      string `json:"id,omitempty"`
	Applied bool   `json:"applied"`
}

// Command is a single user interaction.
type Command interface {
	apply(a *App) Event
}

// SelectChore opens the chore detail view.
type SelectChore struct{ ID string }

func (c SelectChore) apply(a *App) Event {
	a.nav = a.nav.SelectChore(c.ID)
	return Event{Entity: EntityNav, Action: "select_chore", ID: c.ID, Applied: true}
}

// SelectUser opens the member detail view.
type SelectUser struct{ ID string }

func (c SelectUser) apply(a *App) Event {
	a.nav = a.nav.SelectUser(c.ID)
	return Event{Entity: EntityNav, Action: "select_user", ID: c.ID, Applied: true}
}

// Navigate is a navigation bar or sidebar tap.
type Navigate struct{ View nav.View }

func (c Navigate) apply(a *App) Event {
	a.nav = a.nav.Navigate(c.View)
	return Event{Entity: EntityNav, Action: "navigate", ID: c.View.String(), Applied: true}
}

type Back struct{}

func (Back) apply(a *App) Event {
	a.nav = a.nav.Back()
	return Event{Entity: EntityNav, Action: "back", Applied: true}
}

type ToggleComplete struct{ ID string }

func (c ToggleComplete) apply(a *App) Event {
	_, ok := a.chores.ToggleComplete(c.ID)
	return Event{Entity: EntityChore, Action: "toggled", ID: c.ID, Applied: ok}
}

// DeleteChore removes a chore and returns to Home, whether or not the chore
// existed. Interactive deletes go through RequestDelete and ConfirmDelete.
type DeleteChore struct{ ID string }

func (c DeleteChore) apply(a *App) Event {
	ok := a.chores.Delete(c.ID)
	a.nav = a.nav.ChoreDeleted()
	if a.pendingDeleteID == c.ID {
		a.pendingDeleteID = ""
	}
	return Event{Entity: EntityChore, Action: "deleted", ID: c.ID, Applied: ok}
}

// RequestDelete asks for confirmation before deleting a chore.
type RequestDelete struct{ ID string }

func (c RequestDelete) apply(a *App) Event {
	a.pendingDeleteID = c.ID
	return Event{Entity: EntityChore, Action: "delete_requested", ID: c.ID, Applied: true}
}

// ConfirmDelete deletes the chore awaiting confirmation.
type ConfirmDelete struct{}

func (ConfirmDelete) apply(a *App) Event {
	if a.pendingDeleteID == "" {
		return Event{Entity: EntityChore, Action: "deleted"}
	}
	return DeleteChore{ID: a.pendingDeleteID}.apply(a)
}

// CancelDelete declines the pending delete and leaves everything else alone.
type CancelDelete struct{}

func (CancelDelete) apply(a *App) Event {
	id := a.pendingDeleteID
	a.pendingDeleteID = ""
	return Event{Entity: EntityChore, Action: "delete_cancelled", ID: id, Applied: id != ""}
}

// OpenChoreForm opens the chore form, prefilled from EditID when set.
// Editing an unknown chore does nothing.
type OpenChoreForm struct{ EditID string }

func (c OpenChoreForm) apply(a *App) Event {
	if c.EditID == "" {
		a.choreForm = ChoreForm{Open: true}
		return Event{Entity: EntityChoreForm, Action: "opened", Applied: true}
	}
	chore := a.chores.GetByID(c.EditID)
	if chore == nil {
		return Event{Entity: EntityChoreForm, Action: "opened", ID: c.EditID}
	}
	in := chore.Input()
	a.choreForm = ChoreForm{Open: true, EditingID: chore.ID, Initial: &in}
	return Event{Entity: EntityChoreForm, Action: "opened", ID: chore.ID, Applied: true}
}

// SubmitChoreForm saves the chore form: an update when the form is editing a
// chore, a create otherwise. Input without a title or assignee is ignored
// and the form stays open.
type SubmitChoreForm struct{ Input model.ChoreInput }

func (c SubmitChoreForm) apply(a *App) Event {
	if !a.choreForm.Open {
		return Event{Entity: EntityChore, Action: "saved"}
	}

	in := c.Input
	if in.Type == "" {
		in.Type = model.ChoreDaily
	}
	if strings.TrimSpace(in.Description) == "" {
		in.Description = DefaultDescription
	}
	in, ok := store.ValidChoreInput(in)
	if !ok {
		return Event{Entity: EntityChore, Action: "saved", ID: a.choreForm.EditingID}
	}

	editing := a.choreForm.EditingID
	a.choreForm = ChoreForm{}
	if editing != "" {
		_, ok := a.chores.Update(editing, in)
		return Event{Entity: EntityChore, Action: "updated", ID: editing, Applied: ok}
	}
	chore, ok := a.chores.Create(in)
	if !ok {
		return Event{Entity: EntityChore, Action: "created"}
	}
	return Event{Entity: EntityChore, Action: "created", ID: chore.ID, Applied: true}
}

type CloseChoreForm struct{}

func (CloseChoreForm) apply(a *App) Event {
	wasOpen := a.choreForm.Open
	a.choreForm = ChoreForm{}
	return Event{Entity: EntityChoreForm, Action: "closed", Applied: wasOpen}
}

type OpenMemberForm struct{}

func (OpenMemberForm) apply(a *App) Event {
	a.memberForm = MemberForm{Open: true}
	return Event{Entity: EntityMemberForm, Action: "opened", Applied: true}
}

// SubmitMemberForm adds a member. Input without a name is ignored and the
// form stays open.
type SubmitMemberForm struct{ Input model.UserInput }

func (c SubmitMemberForm) apply(a *App) Event {
	if !a.memberForm.Open {
		return Event{Entity: EntityUser, Action: "created"}
	}
	u, ok := a.users.Create(c.Input)
	if !ok {
		return Event{Entity: EntityUser, Action: "created"}
	}
	a.memberForm = MemberForm{}
	return Event{Entity: EntityUser, Action: "created", ID: u.ID, Applied: true}
}

type CloseMemberForm struct{}

func (CloseMemberForm) apply(a *App) Event {
	wasOpen := a.memberForm.Open
	a.memberForm = MemberForm{}
	return Event{Entity: EntityMemberForm, Action: "closed", Applied: wasOpen}
}

// ToggleSetting flips a named setting. Unknown names do nothing.
type ToggleSetting struct{ Name string }

func (c ToggleSetting) apply(a *App) Event {
	ok := a.settings.toggle(c.Name)
	return Event{Entity: EntitySettings, Action: "toggled", ID: c.Name, Applied: ok}
}
