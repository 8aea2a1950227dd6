package handler

import "net/http"

func (h *Handler) Screen(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Screen())
}

func (h *Handler) Chores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Chores())
}

func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Users())
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Leaderboard())
}
