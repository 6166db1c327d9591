package recipes

import (
	"github.com/ytget/recipe-book/internal/model"
)

// Manager defines the operations the UI shell performs on the recipe store.
type Manager interface {
	AddRecipe(name string) (*model.Recipe, error)
	AddIngredient(recipe *model.Recipe, input IngredientInput) (CalorieReport, error)
	AddStep(recipe *model.Recipe, text string) (model.RecipeStep, error)
	FilterSnapshot(criteria Criteria) ([]*model.Recipe, error)
	ClearAll()

	// Recipes returns the store contents ordered by name
	Recipes() []*model.Recipe

	// Snapshot returns the unfiltered copy used as filter input
	Snapshot() []*model.Recipe

	Selected() *model.Recipe
	Select(id string) (*model.Recipe, bool)
	Len() int
}
