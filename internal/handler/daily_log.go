package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitstack/macrotracker/internal/ctxkeys"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
	"github.com/fitstack/macrotracker/internal/validation"
)

type DailyLogHandler struct {
	tracker *service.TrackerService
}

func NewDailyLogHandler(tracker *service.TrackerService) *DailyLogHandler {
	return &DailyLogHandler{
		tracker: tracker,
	}
}

type createLogRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Date      string  `json:"date"`
}

type createLogResponse struct {
	ID string `json:"id"`
}

func (h *DailyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.SessionFrom(r.Context())

	items, err := h.tracker.ListLogsForDate(r.Context(), session.Date)
	if err != nil {
		renderServiceError(w, r, "list logs", err)
		return
	}

	ui.Render(w, r, http.StatusOK, items)
}

func (h *DailyLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.SessionFrom(r.Context())

	var req createLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.ProductID == "" {
		ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: "product is required", Field: "product_id"})
		return
	}

	date := session.Date
	if req.Date != "" {
		parsed, err := parseLogDate(req.Date, session.Today)
		if err != nil {
			ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: err.Error(), Field: "date"})
			return
		}
		date = parsed
	}

	id, err := h.tracker.InsertLog(r.Context(), req.ProductID, req.Quantity, date)
	if err != nil {
		renderServiceError(w, r, "insert log", err)
		return
	}

	ui.Render(w, r, http.StatusCreated, createLogResponse{ID: id})
}

// Delete succeeds for unknown ids too; the client just refreshes its list.
func (h *DailyLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logID := r.PathValue("id")

	err := h.tracker.DeleteLog(r.Context(), logID)
	if errors.Is(err, service.ErrNotFound) {
		slog.Warn("log entry already gone", "log_id", logID, "request_id", ctxkeys.RequestID(r.Context()))
		ui.NoContent(w)
		return
	}
	if err != nil {
		renderServiceError(w, r, "delete log", err)
		return
	}

	ui.NoContent(w)
}

func parseLogDate(raw string, today time.Time) (time.Time, error) {
	date, err := validation.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}

	err = validation.ValidateNotFuture(date, today)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}
