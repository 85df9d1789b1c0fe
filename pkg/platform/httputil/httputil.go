// Package httputil centralizes JSON encoding and error translation for HTTP handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteBadRequest writes a 400 response with a bare error message, matching the
// risk-check API contract: {"error": "..."}.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// WriteInternalError writes a 500 response without leaking internals to the client.
func WriteInternalError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
}

// Decode decodes the request body into T. On failure it logs the decode error
// and writes a 400 response; the caller should return immediately when ok is false.
func Decode[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if logger != nil {
			logger.DebugContext(r.Context(), "request body decode failed", "error", err)
		}
		WriteBadRequest(w, "invalid request body")
		return nil, false
	}
	return &body, true
}
