package recipes

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/recipe-book/internal/model"
)

// Compile-time interface check.
var _ Manager = (*Store)(nil)

// CalorieReport is the recomputed calorie total after an ingredient was added.
// OverLimit is advisory; the ingredient is stored either way.
type CalorieReport struct {
	Total     int
	OverLimit bool
}

// Store holds the recipes for the lifetime of the process.
//
// recipes is kept ordered by name. original mirrors it after every mutation
// and is the only input to filtering, so a filtered view never loses recipes.
// Store is not safe for concurrent use; the UI event loop serializes calls.
type Store struct {
	recipes  []*model.Recipe
	original []*model.Recipe
	selected *model.Recipe
	log      *zap.Logger
}

// NewStore creates an empty recipe store
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		recipes:  make([]*model.Recipe, 0),
		original: make([]*model.Recipe, 0),
		log:      logger,
	}
}

// AddRecipe creates a recipe, re-sorts the store and selects the new recipe
func (s *Store) AddRecipe(name string) (*model.Recipe, error) {
	input := recipeNameInput{Name: strings.TrimSpace(name)}
	if err := validateStruct(input); err != nil {
		s.log.Debug("recipe rejected", zap.Error(err))
		return nil, err
	}

	recipe := model.NewRecipe(input.Name)
	s.recipes = SortByName(append(s.recipes, recipe))
	s.syncSnapshot()
	s.selected = recipe

	s.log.Info("recipe added",
		zap.String("id", recipe.ID),
		zap.String("name", recipe.Name),
		zap.Int("recipes", len(s.recipes)))
	return recipe, nil
}

// AddIngredient validates the input and appends the ingredient to recipe.
// Fields are checked in order: recipe, name, measurement, food group,
// calories, quantity. The first failure is returned and nothing is added.
func (s *Store) AddIngredient(recipe *model.Recipe, input IngredientInput) (CalorieReport, error) {
	if recipe == nil {
		return CalorieReport{}, newValidationError("recipe", ErrNoRecipeSelected)
	}

	in := input.trimmed()
	if err := validateStruct(in); err != nil {
		s.log.Debug("ingredient rejected", zap.String("recipe", recipe.Name), zap.Error(err))
		return CalorieReport{}, err
	}

	calories, ok := parseWholeNumber(in.Calories)
	if !ok {
		return CalorieReport{}, newValidationError("calories", ErrInvalidCalories)
	}
	quantity, ok := parseWholeNumber(in.Quantity)
	if !ok {
		return CalorieReport{}, newValidationError("quantity", ErrInvalidQuantity)
	}

	recipe.AddIngredient(model.Ingredient{
		Name:        in.Name,
		Measurement: in.Measurement,
		Quantity:    quantity,
		Calories:    calories,
		FoodGroup:   in.FoodGroup,
	})

	total := model.TotalCalories(recipe)
	report := CalorieReport{Total: total, OverLimit: model.ExceedsLimit(total)}

	s.log.Info("ingredient added",
		zap.String("recipe", recipe.Name),
		zap.String("ingredient", in.Name),
		zap.Int("totalCalories", report.Total),
		zap.Bool("overLimit", report.OverLimit))
	return report, nil
}

// AddStep appends a preparation step to recipe
func (s *Store) AddStep(recipe *model.Recipe, text string) (model.RecipeStep, error) {
	if recipe == nil {
		return model.RecipeStep{}, newValidationError("recipe", ErrNoRecipeSelected)
	}

	input := stepInput{Text: strings.TrimSpace(text)}
	if err := validateStruct(input); err != nil {
		s.log.Debug("step rejected", zap.String("recipe", recipe.Name), zap.Error(err))
		return model.RecipeStep{}, err
	}

	step := recipe.AddStep(input.Text)
	s.log.Info("step added", zap.String("recipe", recipe.Name), zap.Int("steps", len(recipe.Steps)))
	return step, nil
}

// FilterSnapshot filters the unfiltered snapshot. A failure inside the filter
// is reported as ErrFilterFailed and leaves the store untouched.
func (s *Store) FilterSnapshot(criteria Criteria) (result []*model.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("filter failed", zap.Any("panic", r))
			result = nil
			err = fmt.Errorf("%w: %v", ErrFilterFailed, r)
		}
	}()

	result = Filter(s.Snapshot(), criteria)
	s.log.Debug("filter applied",
		zap.String("name", criteria.Name),
		zap.String("foodGroup", criteria.FoodGroup),
		zap.Int("maxCalories", criteria.MaxCalories),
		zap.Int("matches", len(result)))
	return result, nil
}

// ClearAll empties the store, the snapshot and the selection
func (s *Store) ClearAll() {
	count := len(s.recipes)
	s.recipes = make([]*model.Recipe, 0)
	s.original = make([]*model.Recipe, 0)
	s.selected = nil
	s.log.Info("recipes cleared", zap.Int("removed", count))
}

// Recipes returns the recipes ordered by name
func (s *Store) Recipes() []*model.Recipe {
	return slices.Clone(s.recipes)
}

// Snapshot returns a copy of the unfiltered snapshot
func (s *Store) Snapshot() []*model.Recipe {
	return slices.Clone(s.original)
}

// Selected returns the current recipe, or nil
func (s *Store) Selected() *model.Recipe {
	return s.selected
}

// Select makes the recipe with the given ID current.
// An unknown or empty ID clears the selection.
func (s *Store) Select(id string) (*model.Recipe, bool) {
	for _, recipe := range s.recipes {
		if recipe.ID == id {
			s.selected = recipe
			return recipe, true
		}
	}
	s.selected = nil
	return nil, false
}

// Len returns the number of stored recipes
func (s *Store) Len() int {
	return len(s.recipes)
}

// syncSnapshot copies the store into the filter snapshot
func (s *Store) syncSnapshot() {
	s.original = slices.Clone(s.recipes)
}
