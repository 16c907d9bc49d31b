package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the database pool the base handler needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries cross-cutting dependencies: the DB (for health checks) and
// the frontend origin (for CORS).
type Handler struct {
	db          Pinger
	frontendURL string
}

// New creates the base Handler.
func New(db Pinger, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the configured frontend origin and answers preflights.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
