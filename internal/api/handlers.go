/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the read-only REST API.
    Every handler copies a snapshot out of the engine and returns it as JSON;
    nothing here mutates trip or galaxy state.
*/

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

// Reader is what the handlers need from the engine.
type Reader interface {
	Source
	Snapshot() trip.Snapshot
	Systems() []trip.SystemView
}

// Handlers serves the REST API.
type Handlers struct {
	engine Reader
	logger *slog.Logger
}

// NewHandlers creates the handler set over an engine.
func NewHandlers(engine Reader, logger *slog.Logger) *Handlers {
	return &Handlers{engine: engine, logger: logger.With("component", "api")}
}

// HandleGetTrip returns the running trip summary.
func (h *Handlers) HandleGetTrip(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.engine.Summary())
}

// HandleGetSnapshot returns the summary and the current system in one response.
func (h *Handlers) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.engine.Snapshot())
}

// HandleGetCurrentSystem returns the system the player is in.
func (h *Handlers) HandleGetCurrentSystem(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.engine.CurrentSystem())
}

// HandleGetSystems returns every system seen this run.
func (h *Handlers) HandleGetSystems(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.engine.Systems())
}

// HandleGetBody returns one body by system address and body id.
func (h *Handlers) HandleGetBody(w http.ResponseWriter, r *http.Request) {
	address, err := strconv.ParseInt(r.PathValue("address"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid system address", http.StatusBadRequest)
		return
	}
	bodyID, err := strconv.Atoi(r.PathValue("body"))
	if err != nil {
		http.Error(w, "Invalid body id", http.StatusBadRequest)
		return
	}

	view, ok := h.engine.BodyView(game.BodyKey{SystemAddress: address, BodyID: bodyID})
	if !ok {
		http.Error(w, "Body not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, view)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", "error", err)
	}
}
