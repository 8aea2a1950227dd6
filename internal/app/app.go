// Package app holds the household's whole application state and applies
// user commands to it.
//
// An App is the single owner of the entity stores. Dispatch serializes every
// command, so each one is applied completely before the next is looked at.
package app

import (
	"log/slog"
	"sync"

	"github.com/dukerupert/chorechart/internal/model"
	"github.com/dukerupert/chorechart/internal/nav"
	"github.com/dukerupert/chorechart/internal/stats"
	"github.com/dukerupert/chorechart/internal/store"
)

// ChoreForm is the add/edit chore form. EditingID is empty when the form
// adds a new chore.
type ChoreForm struct {
	Open      bool              `json:"open"`
	EditingID string            `json:"editing_id,omitempty"`
	Initial   *model.ChoreInput `json:"initial,omitempty"`
}

type MemberForm struct {
	Open bool `json:"open"`
}

type App struct {
	mu sync.Mutex

	chores *store.ChoreStore
	users  *store.UserStore

	nav             nav.State
	currentUserID   string
	choreForm       ChoreForm
	memberForm      MemberForm
	pendingDeleteID string
	settings        Settings

	logger *slog.Logger
}

type Options struct {
	// CurrentUserID is the member using the app. Empty or unknown ids fall
	// back to the first member.
	CurrentUserID string
	Logger        *slog.Logger
}

func New(chores *store.ChoreStore, users *store.UserStore, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	current := opts.CurrentUserID
	if users.GetByID(current) == nil {
		current = ""
		if first := users.First(); first != nil {
			current = first.ID
		}
		if opts.CurrentUserID != "" {
			logger.Warn("unknown current user, using first member", "requested", opts.CurrentUserID, "user_id", current)
		}
	}

	return &App{
		chores:        chores,
		users:         users,
		nav:           nav.Initial(),
		currentUserID: current,
		settings:      DefaultSettings(),
		logger:        logger,
	}
}

// Dispatch applies cmd and returns what happened along with the screen to
// render afterwards.
func (a *App) Dispatch(cmd Command) (Event, Screen) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ev := cmd.apply(a)
	if !ev.Applied {
		a.logger.Debug("command had no effect", "entity", ev.Entity, "action", ev.Action, "id", ev.ID)
	}
	return ev, a.screen()
}

// Screen resolves the current state without changing it.
func (a *App) Screen() Screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen()
}

func (a *App) Nav() nav.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nav
}

func (a *App) Chores() []model.Chore {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chores.List()
}

func (a *App) Users() []model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.users.List()
}

func (a *App) Leaderboard() stats.Board {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.Leaderboard(a.users.List(), a.chores.List())
}

// lookup answers the navigation resolver. Callers must hold a.mu.
type lookup struct{ a *App }

func (l lookup) HasChore(id string) bool { return l.a.chores.GetByID(id) != nil }
func (l lookup) HasUser(id string) bool  { return l.a.users.GetByID(id) != nil }
