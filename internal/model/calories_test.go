package model

import "testing"

func TestTotalCalories(t *testing.T) {
	tests := []struct {
		name     string
		calories []int
		expected int
	}{
		{"no ingredients", nil, 0},
		{"single ingredient", []int{120}, 120},
		{"pie", []int{150, 200}, 350},
		{"zero calorie ingredients", []int{0, 0, 0}, 0},
		{"many ingredients", []int{10, 20, 30, 40}, 100},
	}

	for _, test := range tests {
		recipe := NewRecipe(test.name)
		for _, c := range test.calories {
			recipe.AddIngredient(Ingredient{Name: "x", Calories: c})
		}

		result := TotalCalories(recipe)
		if result != test.expected {
			t.Errorf("TotalCalories(%s) = %d, expected %d", test.name, result, test.expected)
		}
		if recipe.TotalCalories() != result {
			t.Errorf("Recipe.TotalCalories() = %d, expected %d", recipe.TotalCalories(), result)
		}
	}
}

func TestTotalCalories_NilRecipe(t *testing.T) {
	if got := TotalCalories(nil); got != 0 {
		t.Errorf("TotalCalories(nil) = %d, expected 0", got)
	}
}

func TestTotalCalories_Recomputed(t *testing.T) {
	recipe := NewRecipe("Soup")
	recipe.AddIngredient(Ingredient{Name: "water", Calories: 0})
	if got := recipe.TotalCalories(); got != 0 {
		t.Fatalf("expected 0 calories, got %d", got)
	}

	recipe.AddIngredient(Ingredient{Name: "noodles", Calories: 220})
	if got := recipe.TotalCalories(); got != 220 {
		t.Errorf("expected 220 calories after adding noodles, got %d", got)
	}
}

func TestExceedsLimit(t *testing.T) {
	tests := []struct {
		total    int
		expected bool
	}{
		{0, false},
		{299, false},
		{300, false},
		{301, true},
		{350, true},
		{-10, false},
	}

	for _, test := range tests {
		result := ExceedsLimit(test.total)
		if result != test.expected {
			t.Errorf("ExceedsLimit(%d) = %v, expected %v", test.total, result, test.expected)
		}
	}
}
