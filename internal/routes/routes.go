package routes

import (
	"net/http"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/handler"
	"github.com/fitstack/macrotracker/internal/middleware"
	"github.com/fitstack/macrotracker/internal/ui"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	products := handler.NewProductHandler(app.Tracker)
	logs := handler.NewDailyLogHandler(app.Tracker)
	goals := handler.NewGoalHandler(app.Tracker)
	dashboard := handler.NewDashboardHandler(app.Tracker)
	settings := handler.NewSettingsHandler(app.Tracker, app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", settings.Health)

	// ============================================================================
	// API ROUTES (/api/*)
	// ============================================================================

	// Products
	mux.HandleFunc("GET /api/products", products.List)
	mux.HandleFunc("GET /api/products/{id}/preview", products.Preview)
	mux.HandleFunc("DELETE /api/products/{id}", products.Delete)

	// Daily logs
	mux.HandleFunc("GET /api/logs", logs.List)
	mux.HandleFunc("POST /api/logs", logs.Create)
	mux.HandleFunc("DELETE /api/logs/{id}", logs.Delete)

	// Goals
	mux.HandleFunc("GET /api/goals", goals.Get)
	mux.HandleFunc("PUT /api/goals", goals.Update)

	// Dashboard
	mux.HandleFunc("GET /api/summary", dashboard.Summary)
	mux.HandleFunc("GET /api/trend", dashboard.Trend)

	// Settings
	mux.HandleFunc("GET /api/config", settings.Config)
	mux.HandleFunc("GET /api/cache", settings.CacheStatus)
	mux.HandleFunc("POST /api/cache/refresh", settings.RefreshCache)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		ui.RenderError(w, r, http.StatusNotFound, ui.ErrorBody{Error: "not found"})
	})

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.Session(app.Cfg.Location(), nil), // selected date for every request
	)

	return handler
}
