package model

import (
	"github.com/google/uuid"
)

// Ingredient represents a single ingredient line of a recipe
type Ingredient struct {
	Name        string
	Measurement string // unit of measurement, e.g. "cups"
	Quantity    int
	Calories    int
	FoodGroup   string
}

// RecipeStep represents a single preparation instruction
type RecipeStep struct {
	Text        string
	IsCompleted bool
}

// Recipe represents a named collection of ingredients and steps
type Recipe struct {
	ID          string
	Name        string
	Ingredients []Ingredient
	Steps       []RecipeStep
}

// NewRecipe creates a recipe with empty ingredient and step lists
func NewRecipe(name string) *Recipe {
	return &Recipe{
		ID:          uuid.NewString(),
		Name:        name,
		Ingredients: make([]Ingredient, 0),
		Steps:       make([]RecipeStep, 0),
	}
}

// AddIngredient appends an ingredient to the recipe
func (r *Recipe) AddIngredient(ingredient Ingredient) {
	r.Ingredients = append(r.Ingredients, ingredient)
}

// AddStep appends a new, not yet completed step and returns it
func (r *Recipe) AddStep(text string) RecipeStep {
	step := RecipeStep{Text: text}
	r.Steps = append(r.Steps, step)
	return step
}

// IngredientCount returns the number of ingredients in the recipe
func (r *Recipe) IngredientCount() int {
	return len(r.Ingredients)
}

// TotalCalories returns the sum of the recipe's ingredient calories
func (r *Recipe) TotalCalories() int {
	return TotalCalories(r)
}
