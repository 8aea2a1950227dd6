package handler

import (
	"net/http"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/nav"
)

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.Back{})
}

// Navigate switches to the view named in the path, e.g. /api/nav/leaderboard.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("view")
	view, ok := nav.ParseView(name)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown view "+name)
		return
	}
	h.dispatch(w, app.Navigate{View: view})
}

func (h *Handler) SelectChore(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.SelectChore{ID: r.PathValue("id")})
}

func (h *Handler) SelectMember(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.SelectUser{ID: r.PathValue("id")})
}
