package app

import (
	"github.com/dukerupert/chorechart/internal/model"
	"github.com/dukerupert/chorechart/internal/nav"
	"github.com/dukerupert/chorechart/internal/stats"
)

// Reward is an entry of the household rewards catalog.
type Reward struct {
	Emoji  string `json:"emoji"`
	Title  string `json:"title"`
	Points int    `json:"points"`
}

var Rewards = []Reward{
	{Emoji: "🍦", Title: "Ice Cream Trip", Points: 200},
	{Emoji: "🎬", Title: "Movie Night", Points: 500},
	{Emoji: "🎢", Title: "Theme Park", Points: 3000},
	{Emoji: "🎮", Title: "New Game", Points: 1500},
}

// Screen is everything a client needs to draw the current state. Exactly
// one of the per-screen fields is set, matching Name.
type Screen struct {
	Name            nav.Screen  `json:"name"`
	Nav             nav.State   `json:"nav"`
	ShowNavBar      bool        `json:"show_nav_bar"`
	CurrentUser     *model.User `json:"current_user"`
	ChoreForm       ChoreForm   `json:"chore_form"`
	MemberForm      MemberForm  `json:"member_form"`
	PendingDeleteID string      `json:"pending_delete_id,omitempty"`

	Home        *HomeView     `json:"home,omitempty"`
	Details     *DetailsView  `json:"details,omitempty"`
	Leaderboard *stats.Board  `json:"leaderboard,omitempty"`
	Family      *FamilyView   `json:"family,omitempty"`
	Settings    *SettingsView `json:"settings,omitempty"`
	Member      *MemberView   `json:"member,omitempty"`
}

type HomeView struct {
	Users        []model.User  `json:"users"`
	Chores       []model.Chore `json:"chores"`
	PendingCount int           `json:"pending_count"`
	Rewards      []Reward      `json:"rewards"`
}

// DetailsView shows one chore. Assignee is nil when the chore points at a
// member who no longer exists.
type DetailsView struct {
	Chore    model.Chore  `json:"chore"`
	Assignee *model.User  `json:"assignee"`
	Users    []model.User `json:"users"`
}

type FamilyMember struct {
	User model.User `json:"user"`
	stats.Totals
}

type FamilyView struct {
	Members []FamilyMember `json:"members"`
}

type SettingsView struct {
	CurrentUser *model.User `json:"current_user"`
	Settings    Settings    `json:"settings"`
}

type MemberView struct {
	User model.User `json:"user"`
	stats.Member
}

// screen builds the view model for the current state. Callers must hold a.mu.
func (a *App) screen() Screen {
	target := nav.Resolve(a.nav, lookup{a})

	s := Screen{
		Name:            target.Screen,
		Nav:             a.nav,
		ShowNavBar:      a.nav.ShowNavBar(),
		CurrentUser:     a.users.GetByID(a.currentUserID),
		ChoreForm:       a.choreForm,
		MemberForm:      a.memberForm,
		PendingDeleteID: a.pendingDeleteID,
	}

	users := a.users.List()
	chores := a.chores.List()

	switch target.Screen {
	case nav.ChoreDetailScreen:
		chore := a.chores.GetByID(target.ChoreID)
		s.Details = &DetailsView{
			Chore:    *chore,
			Assignee: a.users.GetByID(chore.AssigneeID),
			Users:    users,
		}
	case nav.MemberDetailScreen:
		u := a.users.GetByID(target.UserID)
		s.Member = &MemberView{User: *u, Member: stats.MemberSummary(*u, chores)}
	case nav.LeaderboardScreen:
		b := stats.Leaderboard(users, chores)
		s.Leaderboard = &b
	case nav.FamilyScreen:
		members := make([]FamilyMember, len(users))
		for i, u := range users {
			members[i] = FamilyMember{User: u, Totals: stats.TotalsFor(u, chores)}
		}
		s.Family = &FamilyView{Members: members}
	case nav.SettingsScreen:
		s.Settings = &SettingsView{CurrentUser: s.CurrentUser, Settings: a.settings}
	default:
		s.Name = nav.HomeScreen
		s.Home = &HomeView{
			Users:        users,
			Chores:       chores,
			PendingCount: stats.Pending(chores),
			Rewards:      Rewards,
		}
	}
	return s
}
