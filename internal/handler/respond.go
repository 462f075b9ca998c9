package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitstack/macrotracker/internal/ctxkeys"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
)

// renderServiceError maps the tracker's error taxonomy to a response.
// Nothing here is fatal; every failure is reported and the user can retry.
func renderServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrReference):
		ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: "product does not exist", Field: "product_id"})
	case errors.Is(err, service.ErrNotFound):
		ui.RenderError(w, r, http.StatusNotFound, ui.ErrorBody{Error: "not found"})
	case errors.Is(err, service.ErrDataUnavailable):
		slog.Error("data store unavailable", "error", err, "op", op, "request_id", ctxkeys.RequestID(r.Context()))
		ui.RenderError(w, r, http.StatusServiceUnavailable, ui.ErrorBody{Error: "data is temporarily unavailable", Retryable: true})
	default:
		slog.Error("request failed", "error", err, "op", op, "request_id", ctxkeys.RequestID(r.Context()))
		ui.RenderError(w, r, http.StatusInternalServerError, ui.ErrorBody{Error: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err != nil {
		ui.RenderError(w, r, http.StatusBadRequest, ui.ErrorBody{Error: "invalid JSON body"})
		return false
	}
	return true
}
