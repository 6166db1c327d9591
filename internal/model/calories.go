package model

// CalorieLimit is the total above which a recipe triggers a calorie warning
const CalorieLimit = 300

// TotalCalories sums the calories of all ingredients of the recipe.
// A nil recipe or one without ingredients totals 0.
func TotalCalories(r *Recipe) int {
	if r == nil {
		return 0
	}

	total := 0
	for _, ingredient := range r.Ingredients {
		total += ingredient.Calories
	}
	return total
}

// ExceedsLimit reports whether total is above CalorieLimit.
// Exceeding the limit is advisory only.
func ExceedsLimit(total int) bool {
	return total > CalorieLimit
}
