package validation

import (
	"errors"
	"fmt"
	"math"
)

// ValidateQuantity checks a logged quantity: positive, finite and strictly
// below ceiling.
func ValidateQuantity(quantity, ceiling float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return errors.New("quantity must be a number")
	}

	if quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	if quantity >= ceiling {
		return fmt.Errorf("quantity must be less than %g", ceiling)
	}

	return nil
}

// ValidateGoal checks a daily goal value. Zero is allowed and means no goal.
func ValidateGoal(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.New("goal must be a number")
	}

	if value < 0 {
		return errors.New("goal cannot be negative")
	}

	return nil
}
