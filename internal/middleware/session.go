package middleware

import (
	"net/http"
	"time"

	"github.com/fitstack/macrotracker/internal/ctxkeys"
	"github.com/fitstack/macrotracker/internal/ui"
	"github.com/fitstack/macrotracker/internal/validation"
)

// Session resolves the selected date for the request. The date comes from
// the "date" query parameter and defaults to today in loc. Malformed or
// future dates are rejected before any handler runs.
func Session(loc *time.Location, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := now().In(loc)
			today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			session := ctxkeys.Session{Date: today, Today: today}

			if raw := r.URL.Query().Get("date"); raw != "" {
				date, err := validation.ParseDate(raw)
				if err == nil {
					err = validation.ValidateNotFuture(date, today)
				}
				if err != nil {
					ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: err.Error(), Field: "date"})
					return
				}
				session.Date = date
			}

			ctx := ctxkeys.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
