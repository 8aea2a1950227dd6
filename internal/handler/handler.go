// Package handler exposes the chore chart over JSON. Every POST dispatches
// one app command, tells websocket clients about applied changes and answers
// with the screen to render next.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/websocket"
)

// maxBodyBytes bounds form submissions.
const maxBodyBytes = 64 << 10

type Handler struct {
	app    *app.App
	hub    *websocket.Hub
	logger *slog.Logger
}

func New(a *app.App, hub *websocket.Hub, logger *slog.Logger) *Handler {
	return &Handler{app: a, hub: hub, logger: logger}
}

// Result is the body of every POST response.
type Result struct {
	Applied bool       `json:"applied"`
	Screen  app.Screen `json:"screen"`
}

func (h *Handler) dispatch(w http.ResponseWriter, cmd app.Command) {
	ev, screen := h.app.Dispatch(cmd)
	if ev.Applied {
		h.broadcast(websocket.NewMessage(ev.Entity, ev.Action, ev.ID, map[string]any{
			"screen": screen.Name.String(),
		}))
	}
	writeJSON(w, http.StatusOK, Result{Applied: ev.Applied, Screen: screen})
}

func (h *Handler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
