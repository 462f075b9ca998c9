package middleware

import (
	"net/http"

	"github.com/fitstack/macrotracker/internal/config"
	"github.com/fitstack/macrotracker/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// Connection strings and the Sentry DSN are excluded.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	sanitized := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), sanitized)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
