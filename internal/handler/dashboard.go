package handler

import (
	"net/http"

	"github.com/fitstack/macrotracker/internal/ctxkeys"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
)

type DashboardHandler struct {
	tracker *service.TrackerService
}

func NewDashboardHandler(tracker *service.TrackerService) *DashboardHandler {
	return &DashboardHandler{
		tracker: tracker,
	}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.SessionFrom(r.Context())

	summary, err := h.tracker.DailySummary(r.Context(), session.Date)
	if err != nil {
		renderServiceError(w, r, "daily summary", err)
		return
	}

	ui.Render(w, r, http.StatusOK, summary)
}

// Trend returns the 7 days ending at the selected date.
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.SessionFrom(r.Context())

	trend, err := h.tracker.WeeklyTrend(r.Context(), session.Date)
	if err != nil {
		renderServiceError(w, r, "weekly trend", err)
		return
	}

	ui.Render(w, r, http.StatusOK, trend)
}
