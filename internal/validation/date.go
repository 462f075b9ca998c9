package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/fitstack/macrotracker/internal/model"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return time.Time{}, errors.New("date is required")
	}

	date, err := time.Parse(model.DateLayout, trimmed)
	if err != nil {
		return time.Time{}, errors.New("date must use the YYYY-MM-DD format")
	}

	return date, nil
}

// ValidateNotFuture rejects dates after today. Both are compared as calendar dates.
func ValidateNotFuture(date, today time.Time) error {
	if date.Format(model.DateLayout) > today.Format(model.DateLayout) {
		return errors.New("date cannot be in the future")
	}
	return nil
}

// ValidateProductName validates a product name from a catalog or form.
func ValidateProductName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}
