package handler

import "net/http"

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/screen", h.Screen)
	mux.HandleFunc("GET /api/chores", h.Chores)
	mux.HandleFunc("GET /api/members", h.Members)
	mux.HandleFunc("GET /api/leaderboard", h.Leaderboard)

	mux.HandleFunc("POST /api/nav/back", h.Back)
	mux.HandleFunc("POST /api/nav/{view}", h.Navigate)
	mux.HandleFunc("POST /api/chores/{id}/select", h.SelectChore)
	mux.HandleFunc("POST /api/members/{id}/select", h.SelectMember)

	mux.HandleFunc("POST /api/chores/{id}/toggle", h.ToggleChore)
	mux.HandleFunc("POST /api/chores/{id}/delete", h.DeleteChore)
	mux.HandleFunc("POST /api/chores/delete/confirm", h.ConfirmDelete)
	mux.HandleFunc("POST /api/chores/delete/cancel", h.CancelDelete)

	mux.HandleFunc("POST /api/chore-form", h.OpenChoreForm)
	mux.HandleFunc("POST /api/chores/{id}/edit", h.EditChore)
	mux.HandleFunc("POST /api/chore-form/submit", h.SubmitChoreForm)
	mux.HandleFunc("POST /api/chore-form/close", h.CloseChoreForm)

	mux.HandleFunc("POST /api/member-form", h.OpenMemberForm)
	mux.HandleFunc("POST /api/member-form/submit", h.SubmitMemberForm)
	mux.HandleFunc("POST /api/member-form/close", h.CloseMemberForm)

	mux.HandleFunc("POST /api/settings/{name}/toggle", h.ToggleSetting)
}
