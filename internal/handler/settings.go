package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitstack/macrotracker/internal/cache"
	"github.com/fitstack/macrotracker/internal/ctxkeys"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SettingsHandler struct {
	tracker *service.TrackerService
	db      Pinger
}

func NewSettingsHandler(tracker *service.TrackerService, db Pinger) *SettingsHandler {
	return &SettingsHandler{
		tracker: tracker,
		db:      db,
	}
}

type cacheStatusResponse struct {
	Strategy string        `json:"strategy"`
	Caches   []cache.Stats `json:"caches"`
}

func (h *SettingsHandler) CacheStatus(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, cacheStatusResponse{
		Strategy: "cache-aside",
		Caches:   h.tracker.CacheStats(),
	})
}

func (h *SettingsHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	h.tracker.RefreshCache()
	ui.NoContent(w)
}

func (h *SettingsHandler) Config(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, ctxkeys.Config(r.Context()))
}

func (h *SettingsHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.db.PingContext(ctx)
	if err != nil {
		slog.Error("health check failed", "error", err)
		ui.RenderError(w, r, http.StatusServiceUnavailable, ui.ErrorBody{Error: "database unreachable", Retryable: true})
		return
	}

	ui.Render(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
