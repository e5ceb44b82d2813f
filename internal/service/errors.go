package service

import (
	"errors"
	"fmt"
)

// Not-found conditions are distinct from validation failures so the HTTP
// layer can map them to 404 vs 400.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrMealItemNotFound   = errors.New("meal item not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed or out-of-range input. No partial
// write happens when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFound reports whether err is any of the entity not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrFoodItemNotFound) ||
		errors.Is(err, ErrMealNotFound) ||
		errors.Is(err, ErrMealItemNotFound)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
