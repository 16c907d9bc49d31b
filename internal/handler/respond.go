package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vormwerk/backend/internal/repository"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a generic error body. The code is a short snake_case
// token; no error subtypes or details leak to the client.
func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]string{"error": code})
}

// respondStorageError maps a storage-layer failure: ErrNotFound becomes 404,
// anything else is logged and collapses to a generic 500.
func respondStorageError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	slog.Error("storage operation failed", "op", op, "error", err)
	respondError(w, http.StatusInternalServerError, "internal_error")
}
