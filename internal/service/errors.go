package service

import (
	"errors"
	"fmt"
)

var (
	ErrReference       = errors.New("referenced product does not exist")
	ErrNotFound        = errors.New("not found")
	ErrDataUnavailable = errors.New("data store unavailable")
)

// ValidationError reports bad user input for one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Message: err.Error()}
}

// unavailable classifies a store failure as retryable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDataUnavailable, err)
}
