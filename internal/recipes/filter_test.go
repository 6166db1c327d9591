package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/recipe-book/internal/model"
)

func recipeWith(name string, ingredients ...model.Ingredient) *model.Recipe {
	recipe := model.NewRecipe(name)
	for _, ingredient := range ingredients {
		recipe.AddIngredient(ingredient)
	}
	return recipe
}

func ingredient(foodGroup string, calories int) model.Ingredient {
	return model.Ingredient{Name: "item", Measurement: "g", Quantity: 1, Calories: calories, FoodGroup: foodGroup}
}

func sampleRecipes() []*model.Recipe {
	return []*model.Recipe{
		recipeWith("Tomato Soup", ingredient("Vegetables", 90), ingredient("Dairy", 60)),
		recipeWith("Apple Pie", ingredient("Fruit", 150), ingredient("Grains", 200)),
		recipeWith("Empty Plate"),
		recipeWith("Green Salad", ingredient("Vegetables", 40)),
		recipeWith("Cheese Toast", ingredient("", 120), ingredient("dairy", 180)),
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{
			name:     "empty criteria excludes recipes without ingredients",
			criteria: Criteria{},
			expected: []string{"Tomato Soup", "Apple Pie", "Green Salad", "Cheese Toast"},
		},
		{
			name:     "name substring is case insensitive",
			criteria: Criteria{Name: "SOUP"},
			expected: []string{"Tomato Soup"},
		},
		{
			name:     "name matches inside words",
			criteria: Criteria{Name: "e"},
			expected: []string{"Apple Pie", "Green Salad", "Cheese Toast"},
		},
		{
			name:     "food group requires any ingredient",
			criteria: Criteria{FoodGroup: "dairy"},
			expected: []string{"Tomato Soup", "Cheese Toast"},
		},
		{
			name:     "food group substring",
			criteria: Criteria{FoodGroup: "VEG"},
			expected: []string{"Tomato Soup", "Green Salad"},
		},
		{
			name:     "calorie threshold inclusive",
			criteria: Criteria{MaxCalories: 150},
			expected: []string{"Tomato Soup", "Green Salad"},
		},
		{
			name:     "negative threshold disables calorie check",
			criteria: Criteria{MaxCalories: -1},
			expected: []string{"Tomato Soup", "Apple Pie", "Green Salad", "Cheese Toast"},
		},
		{
			name:     "criteria combine with and",
			criteria: Criteria{Name: "o", FoodGroup: "dairy", MaxCalories: 200},
			expected: []string{"Tomato Soup"},
		},
		{
			name:     "empty plate never matches",
			criteria: Criteria{Name: "Empty"},
			expected: []string{},
		},
		{
			name:     "no match",
			criteria: Criteria{Name: "lasagne"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(sampleRecipes(), tt.criteria)
			assert.Equal(t, tt.expected, names(result))
		})
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	all := sampleRecipes()
	reversed := make([]*model.Recipe, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		reversed = append(reversed, all[i])
	}

	criteria := Criteria{FoodGroup: "r"}
	assert.Equal(t, []string{"Tomato Soup", "Apple Pie", "Cheese Toast"}, names(Filter(all, criteria)))
	assert.Equal(t, []string{"Cheese Toast", "Apple Pie", "Tomato Soup"}, names(Filter(reversed, criteria)))
}

func TestFilter_Idempotent(t *testing.T) {
	all := sampleRecipes()
	criteria := Criteria{Name: "t", MaxCalories: 400}

	first := Filter(all, criteria)
	second := Filter(all, criteria)

	assert.Equal(t, first, second)
	assert.Len(t, all, 5)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{}))
	assert.NotNil(t, Filter(nil, Criteria{}))
	assert.Empty(t, Filter([]*model.Recipe{}, Criteria{Name: "x", FoodGroup: "y", MaxCalories: 5}))
}

func TestFilter_SkipsNilRecipes(t *testing.T) {
	all := []*model.Recipe{nil, recipeWith("Pie", ingredient("Fruit", 10))}
	assert.Equal(t, []string{"Pie"}, names(Filter(all, Criteria{})))
}

func TestParseMaxCalories(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"250", 250},
		{"  400 ", 400},
		{"-20", -20},
		{"abc", 0},
		{"12.5", 0},
		{"99999999999999999999999", 0},
		{"3000000000", 0},
		{"2147483647", 2147483647},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseMaxCalories(tt.input), "input %q", tt.input)
	}
}

func TestNewCriteria(t *testing.T) {
	criteria := NewCriteria("  pie ", " fruit", "not a number")

	assert.Equal(t, Criteria{Name: "pie", FoodGroup: "fruit", MaxCalories: 0}, criteria)
	assert.Equal(t, 300, NewCriteria("", "", "300").MaxCalories)
}
