package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/config"
	"github.com/fitstack/macrotracker/internal/logger"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	caser   = cases.Title(language.English)
)

func loadConfig() *config.Config {
	cfg := config.Load()
	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.AppEnv,
	})
	return cfg
}

// withApp opens the database, migrating it if needed, and runs fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg := loadConfig()
	defer logger.Flush()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

// today is the current calendar date in the configured timezone.
func today(cfg *config.Config) time.Time {
	t := time.Now().In(cfg.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveDate returns today for an empty value, otherwise the parsed date.
func resolveDate(cfg *config.Config, value string) (time.Time, error) {
	current := today(cfg)
	if value == "" {
		return current, nil
	}

	date, err := validation.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	err = validation.ValidateNotFuture(date, current)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// describe turns tracker errors into messages for the terminal.
func describe(err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("invalid %s: %s", verr.Field, verr.Message)
	case errors.Is(err, service.ErrReference):
		return errors.New("that product no longer exists")
	case errors.Is(err, service.ErrDataUnavailable):
		return fmt.Errorf("data is temporarily unavailable, try again: %w", err)
	}
	return err
}
