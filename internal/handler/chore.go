package handler

import (
	"net/http"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/model"
)

func (h *Handler) ToggleChore(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.ToggleComplete{ID: r.PathValue("id")})
}

// DeleteChore asks for confirmation; nothing is removed until ConfirmDelete.
func (h *Handler) DeleteChore(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.RequestDelete{ID: r.PathValue("id")})
}

func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.ConfirmDelete{})
}

func (h *Handler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.CancelDelete{})
}

func (h *Handler) OpenChoreForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.OpenChoreForm{})
}

func (h *Handler) EditChore(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.OpenChoreForm{EditID: r.PathValue("id")})
}

// choreFormRequest mirrors model.ChoreInput. Points is a pointer so an
// omitted value can take the form's default while an explicit 0 stays 0.
type choreFormRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AssigneeID  string          `json:"assignee_id"`
	Points      *int            `json:"points"`
	Type        model.ChoreType `json:"type"`
}

func (req choreFormRequest) input() model.ChoreInput {
	points := app.DefaultPoints
	if req.Points != nil {
		points = *req.Points
	}
	return model.ChoreInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Points:      points,
		Type:        req.Type,
	}
}

// SubmitChoreForm takes a chore form body. Well-formed JSON that fails
// validation is not an HTTP error: the form stays open and applied is false.
func (h *Handler) SubmitChoreForm(w http.ResponseWriter, r *http.Request) {
	var req choreFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.dispatch(w, app.SubmitChoreForm{Input: req.input()})
}

func (h *Handler) CloseChoreForm(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, app.CloseChoreForm{})
}
