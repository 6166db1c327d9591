package recipes

import (
	"errors"
	"fmt"
)

// Validation causes reported by the store mutations.
var (
	ErrEmptyRecipeName     = errors.New("recipe name is empty")
	ErrNoRecipeSelected    = errors.New("no recipe selected")
	ErrEmptyIngredientName = errors.New("ingredient name is empty")
	ErrEmptyMeasurement    = errors.New("unit of measurement is empty")
	ErrEmptyFoodGroup      = errors.New("food group is empty")
	ErrInvalidQuantity     = errors.New("quantity is not a whole number")
	ErrInvalidCalories     = errors.New("calories is not a whole number")
	ErrEmptyStep           = errors.New("step text is empty")
)

// ErrFilterFailed is returned when filtering the snapshot fails unexpectedly.
var ErrFilterFailed = errors.New("filtering recipes failed")

// ValidationError reports a rejected user input. The store is left unchanged.
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the validation cause
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Err: cause}
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
