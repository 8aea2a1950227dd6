package handler

import (
	"net/http"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/model"
)

func (h *Handler) OpenMemberForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.OpenMemberForm{})
}

func (h *Handler) SubmitMemberForm(w http.ResponseWriter, r *http.Request) {
	var in model.UserInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.dispatch(w, app.SubmitMemberForm{Input: in})
}

func (h *Handler) CloseMemberForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.CloseMemberForm{})
}

func (h *Handler) ToggleSetting(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.ToggleSetting{Name: r.PathValue("name")})
}
