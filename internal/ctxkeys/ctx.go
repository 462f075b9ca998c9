package ctxkeys

import (
	"context"
	"time"

	"github.com/fitstack/macrotracker/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionKey   contextKey = "session"
	ConfigKey    contextKey = "config"
	RequestIDKey contextKey = "request_id"
)

// Session is the state one user action carries: the calendar date the user
// is looking at and what "today" is in the configured timezone.
type Session struct {
	Date  time.Time
	Today time.Time
}

func SessionFrom(ctx context.Context) Session {
	session, _ := ctx.Value(SessionKey).(Session)
	return session
}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
