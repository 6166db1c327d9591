package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-book/internal/model"
)

// RecipeRow is a compact list row showing a recipe name, its ingredient
// count and its calorie total
type RecipeRow struct {
	widget.BaseWidget

	recipe       *model.Recipe
	localization *Localization

	nameLabel     *widget.Label
	detailLabel   *widget.Label
	caloriesLabel *widget.Label
}

// NewRecipeRow creates a new recipe row widget. A nil recipe renders an
// empty placeholder row.
func NewRecipeRow(recipe *model.Recipe, localization *Localization) *RecipeRow {
	rr := &RecipeRow{
		recipe:       recipe,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromRecipe()
	return rr
}

// UpdateRecipe points the row at another recipe and redraws it
func (rr *RecipeRow) UpdateRecipe(recipe *model.Recipe) {
	rr.recipe = recipe
	rr.updateFromRecipe()
	rr.Refresh()
}

// Recipe returns the recipe currently rendered by the row
func (rr *RecipeRow) Recipe() *model.Recipe {
	return rr.recipe
}

func (rr *RecipeRow) createUI() {
	rr.nameLabel = widget.NewLabel("")
	rr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	rr.nameLabel.Alignment = fyne.TextAlignLeading

	rr.detailLabel = widget.NewLabel("")
	rr.detailLabel.Alignment = fyne.TextAlignLeading

	rr.caloriesLabel = widget.NewLabel("")
	rr.caloriesLabel.Alignment = fyne.TextAlignTrailing
	rr.caloriesLabel.TextStyle = fyne.TextStyle{Monospace: true}
}

// updateFromRecipe recomputes the labels; totals are never cached
func (rr *RecipeRow) updateFromRecipe() {
	if rr.recipe == nil {
		rr.nameLabel.SetText("")
		rr.detailLabel.SetText("")
		rr.caloriesLabel.SetText("")
		rr.caloriesLabel.Importance = widget.MediumImportance
		return
	}

	rr.nameLabel.SetText(singleLine(rr.recipe.Name))
	rr.detailLabel.SetText(rr.detailText())

	total := rr.recipe.TotalCalories()
	caloriesText := fmt.Sprintf(CaloriesFormat, total)
	if model.ExceedsLimit(total) {
		rr.caloriesLabel.Importance = widget.WarningImportance
		caloriesText = IconWarning + " " + caloriesText
	} else {
		rr.caloriesLabel.Importance = widget.MediumImportance
	}
	rr.caloriesLabel.SetText(caloriesText)
}

func (rr *RecipeRow) detailText() string {
	text := fmt.Sprintf(rr.localization.GetText(KeyIngredientCount), rr.recipe.IngredientCount())
	if steps := len(rr.recipe.Steps); steps > 0 {
		text += MiddleDotSeparator + fmt.Sprintf("%s: %d", rr.localization.GetText(KeySteps), steps)
	}
	return text
}

// singleLine flattens control whitespace so a name cannot break the row layout
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

// CreateRenderer creates the widget renderer
func (rr *RecipeRow) CreateRenderer() fyne.WidgetRenderer {
	return &recipeRowRenderer{row: rr}
}

type recipeRowRenderer struct {
	row    *RecipeRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *recipeRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *recipeRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *recipeRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.row.nameLabel.Refresh()
	r.row.detailLabel.Refresh()
	r.row.caloriesLabel.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *recipeRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *recipeRowRenderer) Destroy() {}

func (r *recipeRowRenderer) createLayout() {
	rr := r.row

	// Fixed width calorie column keeps totals aligned across rows
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(CaloriesLabelWidth, rr.caloriesLabel.MinSize().Height))
	calories := container.NewStack(spacer, rr.caloriesLabel)

	text := container.NewVBox(rr.nameLabel, rr.detailLabel)
	main := container.NewBorder(nil, nil, nil, calories, text)

	r.layout = container.NewVBox(main, widget.NewSeparator())
}
