package recipes

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IngredientInput carries the raw ingredient form fields.
// Quantity and Calories are parsed as integers by AddIngredient.
type IngredientInput struct {
	Name        string `validate:"required"`
	Measurement string `validate:"required"`
	FoodGroup   string `validate:"required"`
	Quantity    string
	Calories    string
}

type recipeNameInput struct {
	Name string `validate:"required"`
}

type stepInput struct {
	Text string `validate:"required"`
}

// fieldCauses maps struct fields to the field name and cause reported to callers.
var fieldCauses = map[string]struct {
	field string
	cause error
}{
	"IngredientInput.Name":        {"ingredient name", ErrEmptyIngredientName},
	"IngredientInput.Measurement": {"measurement", ErrEmptyMeasurement},
	"IngredientInput.FoodGroup":   {"food group", ErrEmptyFoodGroup},
	"recipeNameInput.Name":        {"recipe name", ErrEmptyRecipeName},
	"stepInput.Text":              {"step", ErrEmptyStep},
}

// trimmed returns a copy of the input with surrounding whitespace removed
func (in IngredientInput) trimmed() IngredientInput {
	return IngredientInput{
		Name:        strings.TrimSpace(in.Name),
		Measurement: strings.TrimSpace(in.Measurement),
		FoodGroup:   strings.TrimSpace(in.FoodGroup),
		Quantity:    strings.TrimSpace(in.Quantity),
		Calories:    strings.TrimSpace(in.Calories),
	}
}

// validateStruct runs the struct tag rules and converts the first failure
// into a ValidationError. Fields are checked in declaration order.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	if mapped, ok := fieldCauses[first.StructNamespace()]; ok {
		return newValidationError(mapped.field, mapped.cause)
	}
	return newValidationError(strings.ToLower(first.Field()), errors.New(first.Error()))
}

// parseWholeNumber parses an integer form value. Values outside the 32-bit
// range are rejected so recipe totals cannot overflow.
func parseWholeNumber(text string) (int, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(value), true
}
