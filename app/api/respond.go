// Package api holds the response helpers shared by the JSON handlers.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/BBojan94/InventoryManagement/apperrors"
)

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError writes a JSON error object in the shape {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// TranslateError maps a service error onto the response: a missing resource
// becomes 404, anything else is logged and reported as a generic 500 so
// storage details never leak to the client.
func TranslateError(w http.ResponseWriter, err error) {
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		WriteError(w, http.StatusNotFound, nf.Error())
		return
	}
	slog.Error("unexpected error", "error", err)
	WriteError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// ParseID reads the {id} path segment as an unsigned integer.
func ParseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
