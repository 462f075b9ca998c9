// Package ui writes API responses. The presentation layer renders from
// these JSON documents.
package ui

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fitstack/macrotracker/internal/ctxkeys"
)

// ErrorBody is the document returned for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	// Field names the offending input for validation failures
	Field string `json:"field,omitempty"`
	// Retryable marks failures the user can simply try again
	Retryable bool `json:"retryable,omitempty"`
}

func Render(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path, "request_id", ctxkeys.RequestID(r.Context()))
	}
}

func RenderError(w http.ResponseWriter, r *http.Request, status int, body ErrorBody) {
	Render(w, r, status, body)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
