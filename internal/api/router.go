/*
Package api
File: router.go
Description:
    Wires the REST handlers and the WebSocket endpoint onto one mux.
*/

package api

import (
	"log/slog"
	"net/http"
)

// NewRouter builds the HTTP handler of the display API.
func NewRouter(engine Reader, hub *Hub, logger *slog.Logger) http.Handler {
	h := NewHandlers(engine, logger)
	mux := http.NewServeMux()

	// Information Endpoints
	mux.HandleFunc("GET /api/trip", h.HandleGetTrip)
	mux.HandleFunc("GET /api/snapshot", h.HandleGetSnapshot)
	mux.HandleFunc("GET /api/system/current", h.HandleGetCurrentSystem)
	mux.HandleFunc("GET /api/systems", h.HandleGetSystems)
	mux.HandleFunc("GET /api/systems/{address}/bodies/{body}", h.HandleGetBody)

	// Real-Time WebSocket Endpoint
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})

	return corsMiddleware(mux)
}

// corsMiddleware lets a display served from another origin read the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
