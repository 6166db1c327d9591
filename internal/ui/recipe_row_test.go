package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-book/internal/model"
)

func TestRecipeRowPlaceholder(t *testing.T) {
	test.NewApp()

	row := NewRecipeRow(nil, NewLocalization())

	assert.Nil(t, row.Recipe())
	assert.Empty(t, row.nameLabel.Text)
	assert.Empty(t, row.detailLabel.Text)
	assert.Empty(t, row.caloriesLabel.Text)
}

func TestRecipeRowShowsTotals(t *testing.T) {
	test.NewApp()

	recipe := model.NewRecipe("Fruit\tSalad")
	recipe.AddIngredient(model.Ingredient{Name: "Apple", Calories: 95, FoodGroup: "Fruit"})
	recipe.AddIngredient(model.Ingredient{Name: "Grapes", Calories: 60, FoodGroup: "Fruit"})
	recipe.AddStep("Chop")

	row := NewRecipeRow(recipe, NewLocalization())

	assert.Equal(t, "Fruit Salad", row.nameLabel.Text)
	assert.Equal(t, "2 ingredients · Steps: 1", row.detailLabel.Text)
	assert.Equal(t, "155 kcal", row.caloriesLabel.Text)
	assert.Equal(t, widget.MediumImportance, row.caloriesLabel.Importance)
}

func TestRecipeRowWarnsOverLimit(t *testing.T) {
	test.NewApp()

	recipe := model.NewRecipe("Feast")
	recipe.AddIngredient(model.Ingredient{Name: "Roast", Calories: 250})
	row := NewRecipeRow(recipe, NewLocalization())
	assert.Equal(t, "250 kcal", row.caloriesLabel.Text)

	// Totals are recomputed on every update
	recipe.AddIngredient(model.Ingredient{Name: "Gravy", Calories: 51})
	row.UpdateRecipe(recipe)

	assert.Equal(t, IconWarning+" 301 kcal", row.caloriesLabel.Text)
	assert.Equal(t, widget.WarningImportance, row.caloriesLabel.Importance)

	row.UpdateRecipe(nil)
	assert.Empty(t, row.caloriesLabel.Text)
}

func TestRecipeRowRenderer(t *testing.T) {
	test.NewApp()

	row := NewRecipeRow(model.NewRecipe("Toast"), NewLocalization())
	renderer := test.WidgetRenderer(row)

	require.Len(t, renderer.Objects(), 1)
	min := renderer.MinSize()
	assert.GreaterOrEqual(t, min.Height, float32(0))

	renderer.Layout(min)
	renderer.Refresh()
}
