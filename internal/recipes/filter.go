package recipes

import (
	"strconv"
	"strings"

	"github.com/ytget/recipe-book/internal/model"
)

// Criteria holds the filter panel values.
// Empty substrings match everything; MaxCalories <= 0 disables the calorie check.
type Criteria struct {
	Name        string
	FoodGroup   string
	MaxCalories int
}

// NewCriteria builds criteria from raw filter panel text.
// An unparseable calorie threshold disables the calorie check.
func NewCriteria(name, foodGroup, maxCalories string) Criteria {
	return Criteria{
		Name:        strings.TrimSpace(name),
		FoodGroup:   strings.TrimSpace(foodGroup),
		MaxCalories: ParseMaxCalories(maxCalories),
	}
}

// ParseMaxCalories parses the calorie threshold, returning 0 when the text
// is not a 32-bit integer.
func ParseMaxCalories(text string) int {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0
	}
	return int(value)
}

// Matches reports whether the recipe satisfies all three criteria.
//
// The food group check requires at least one ingredient whose food group
// contains the substring, so a recipe without ingredients never matches,
// even when the food group filter is empty.
func (c Criteria) Matches(r *model.Recipe) bool {
	if r == nil {
		return false
	}
	return c.matchesName(r, strings.ToLower(c.Name)) &&
		c.matchesFoodGroup(r, strings.ToLower(c.FoodGroup)) &&
		c.matchesCalories(r)
}

func (c Criteria) matchesName(r *model.Recipe, name string) bool {
	return strings.Contains(strings.ToLower(r.Name), name)
}

func (c Criteria) matchesFoodGroup(r *model.Recipe, foodGroup string) bool {
	for _, ingredient := range r.Ingredients {
		if strings.Contains(strings.ToLower(ingredient.FoodGroup), foodGroup) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesCalories(r *model.Recipe) bool {
	if c.MaxCalories <= 0 {
		return true
	}
	return model.TotalCalories(r) <= c.MaxCalories
}

// Filter returns the recipes of all that match the criteria, in their input
// order. It never modifies all or the recipes in it.
func Filter(all []*model.Recipe, c Criteria) []*model.Recipe {
	filtered := make([]*model.Recipe, 0, len(all))
	for _, recipe := range all {
		if c.Matches(recipe) {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}
