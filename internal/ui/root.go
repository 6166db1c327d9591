package ui

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-book/internal/config"
	"github.com/ytget/recipe-book/internal/model"
	"github.com/ytget/recipe-book/internal/recipes"
)

// validationMessages maps store validation causes to localized text keys
var validationMessages = map[error]string{
	recipes.ErrEmptyRecipeName:     KeyErrEnterRecipeName,
	recipes.ErrNoRecipeSelected:    KeyErrSelectRecipe,
	recipes.ErrEmptyIngredientName: KeyErrEnterIngredientName,
	recipes.ErrEmptyMeasurement:    KeyErrEnterMeasurement,
	recipes.ErrEmptyFoodGroup:      KeyErrEnterFoodGroup,
	recipes.ErrInvalidCalories:     KeyErrInvalidCalories,
	recipes.ErrInvalidQuantity:     KeyErrInvalidQuantity,
	recipes.ErrEmptyStep:           KeyErrEnterStep,
}

// RootUI represents the main recipe form
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        recipes.Manager
	settings     *config.Settings
	localization *Localization
	log          *zap.Logger

	// Recipes currently shown in the list: the sorted store, or a filter result
	visible  []*model.Recipe
	filtered bool
	// set while the list selection is restored in code rather than clicked
	reselecting bool

	// Recipe section
	recipesHeader   *widget.Label
	recipeNameEntry *widget.Entry
	addRecipeBtn    *widget.Button
	recipeList      *widget.List

	// Selected recipe details
	selectedLabel      *widget.Label
	totalCaloriesLabel *widget.Label

	// Ingredient form
	ingredientsHeader   *widget.Label
	ingredientNameEntry *widget.Entry
	quantityEntry       *widget.Entry
	measurementEntry    *widget.Entry
	caloriesEntry       *widget.Entry
	foodGroupEntry      *widget.Entry
	addIngredientBtn    *widget.Button
	ingredientList      *widget.List

	// Steps
	stepsHeader *widget.Label
	stepEntry   *widget.Entry
	addStepBtn  *widget.Button
	stepList    *widget.List

	// Scale
	scaleEntry *widget.Entry
	scaleBtn   *widget.Button

	// Filter panel
	filterHeader           *widget.Label
	filterNameEntry        *widget.Entry
	filterFoodGroupEntry   *widget.Entry
	filterMaxCaloriesEntry *widget.Entry
	filterBtn              *widget.Button
	showAllBtn             *widget.Button
	clearAllBtn            *widget.Button
	filterStatusLabel      *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store recipes.Manager, settings *config.Settings, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		settings:     settings,
		localization: localization,
		log:          logger.Named("ui"),
		visible:      store.Recipes(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	window.SetOnClosed(ui.saveWindowSize)

	ui.log.Debug("UI setup completed", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	// Recipe section
	ui.recipesHeader = widget.NewLabelWithStyle(l.GetText(KeyRecipes), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.recipeNameEntry = widget.NewEntry()
	ui.recipeNameEntry.OnSubmitted = func(string) { ui.onAddRecipe() }
	ui.addRecipeBtn = widget.NewButton("", ui.onAddRecipe)
	ui.addRecipeBtn.Importance = widget.HighImportance

	ui.recipeList = widget.NewList(
		func() int { return len(ui.visible) },
		func() fyne.CanvasObject { return NewRecipeRow(nil, ui.localization) },
		ui.updateRecipeItem,
	)
	ui.recipeList.OnSelected = ui.onRecipeSelected
	ui.recipeList.OnUnselected = func(widget.ListItemID) {}

	// Selection and totals
	ui.selectedLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.selectedLabel.Truncation = fyne.TextTruncateEllipsis
	ui.totalCaloriesLabel = widget.NewLabel("")

	// Ingredient form
	ui.ingredientsHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.ingredientNameEntry = widget.NewEntry()
	ui.quantityEntry = widget.NewEntry()
	ui.measurementEntry = widget.NewEntry()
	ui.caloriesEntry = widget.NewEntry()
	ui.foodGroupEntry = widget.NewEntry()
	ui.foodGroupEntry.OnSubmitted = func(string) { ui.onAddIngredient() }
	ui.addIngredientBtn = widget.NewButton("", ui.onAddIngredient)

	ui.ingredientList = widget.NewList(
		func() int { return len(ui.selectedIngredients()) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ingredients := ui.selectedIngredients()
			if id < 0 || id >= len(ingredients) {
				return
			}
			obj.(*widget.Label).SetText(formatIngredient(ingredients[id]))
		},
	)

	// Steps
	ui.stepsHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.stepEntry = widget.NewEntry()
	ui.stepEntry.OnSubmitted = func(string) { ui.onAddStep() }
	ui.addStepBtn = widget.NewButton("", ui.onAddStep)

	ui.stepList = widget.NewList(
		func() int { return len(ui.selectedSteps()) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			steps := ui.selectedSteps()
			if id < 0 || id >= len(steps) {
				return
			}
			obj.(*widget.Label).SetText(formatStep(id+1, steps[id]))
		},
	)

	// Scale
	ui.scaleEntry = widget.NewEntry()
	ui.scaleEntry.OnSubmitted = func(string) { ui.onScale() }
	ui.scaleBtn = widget.NewButton("", ui.onScale)

	// Filter panel
	ui.filterHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.filterNameEntry = widget.NewEntry()
	ui.filterFoodGroupEntry = widget.NewEntry()
	ui.filterMaxCaloriesEntry = widget.NewEntry()
	ui.filterMaxCaloriesEntry.OnSubmitted = func(string) { ui.onFilter() }
	ui.filterBtn = widget.NewButton("", ui.onFilter)
	ui.showAllBtn = widget.NewButton("", ui.onShowAll)
	ui.clearAllBtn = widget.NewButton("", ui.onClearAll)
	ui.clearAllBtn.Importance = widget.DangerImportance
	ui.filterStatusLabel = widget.NewLabel("")

	// Notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.refreshUITexts()

	// Left column: recipe list and filter panel
	recipeRow := container.NewBorder(nil, nil, nil, ui.addRecipeBtn, ui.recipeNameEntry)
	filterPanel := container.NewVBox(
		ui.filterHeader,
		ui.filterNameEntry,
		ui.filterFoodGroupEntry,
		ui.filterMaxCaloriesEntry,
		container.NewGridWithColumns(3, ui.filterBtn, ui.showAllBtn, ui.clearAllBtn),
		ui.filterStatusLabel,
	)
	left := container.NewBorder(
		container.NewVBox(container.NewBorder(nil, nil, nil, settingsBtn, ui.recipesHeader), recipeRow),
		filterPanel,
		nil,
		nil,
		minHeight(ui.recipeList, RecipeListMinHeight),
	)

	// Right column: selected recipe details
	ingredientForm := container.NewVBox(
		ui.ingredientsHeader,
		ui.ingredientNameEntry,
		container.NewGridWithColumns(2, ui.quantityEntry, ui.measurementEntry),
		container.NewGridWithColumns(2, ui.caloriesEntry, ui.foodGroupEntry),
		ui.addIngredientBtn,
	)
	scaleRow := container.NewBorder(nil, nil, nil, ui.scaleBtn, ui.scaleEntry)
	stepRow := container.NewBorder(nil, nil, nil, ui.addStepBtn, ui.stepEntry)

	right := container.NewVBox(
		ui.selectedLabel,
		ingredientForm,
		minHeight(ui.ingredientList, IngredientListMinHeight),
		ui.totalCaloriesLabel,
		scaleRow,
		widget.NewSeparator(),
		ui.stepsHeader,
		stepRow,
		minHeight(ui.stepList, StepListMinHeight),
	)

	split := container.NewHSplit(left, container.NewVScroll(right))
	split.SetOffset(0.4)

	content := container.NewBorder(nil, ui.notificationContainer, nil, nil, split)
	ui.window.SetContent(content)
}

// minHeight wraps a list so that it keeps a usable height inside a VBox
func minHeight(obj fyne.CanvasObject, height float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SidePanelWidth, height))
	return container.NewStack(spacer, obj)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)
	clearItem := fyne.NewMenuItem(l.GetText(KeyClearAll), ui.onClearAll)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	available := l.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(available)) {
		langCode := code
		item := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), clearItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
	ui.log.Info("language changed", zap.String("language", ui.localization.GetCurrentLanguage()))
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.recipesHeader.SetText(l.GetText(KeyRecipes))
	ui.recipeNameEntry.SetPlaceHolder(l.GetText(KeyRecipeName))
	ui.addRecipeBtn.SetText(l.GetText(KeyAddRecipe))

	ui.ingredientsHeader.SetText(l.GetText(KeyIngredients))
	ui.ingredientNameEntry.SetPlaceHolder(l.GetText(KeyIngredientName))
	ui.quantityEntry.SetPlaceHolder(l.GetText(KeyQuantity))
	ui.measurementEntry.SetPlaceHolder(l.GetText(KeyMeasurement))
	ui.caloriesEntry.SetPlaceHolder(l.GetText(KeyCalories))
	ui.foodGroupEntry.SetPlaceHolder(l.GetText(KeyFoodGroup))
	ui.addIngredientBtn.SetText(l.GetText(KeyAddIngredient))

	ui.stepsHeader.SetText(l.GetText(KeySteps))
	ui.stepEntry.SetPlaceHolder(l.GetText(KeyStepText))
	ui.addStepBtn.SetText(l.GetText(KeyAddStep))

	ui.scaleEntry.SetPlaceHolder(l.GetText(KeyScaleFactor))
	ui.scaleBtn.SetText(l.GetText(KeyScale))

	ui.filterHeader.SetText(IconFilter + " " + l.GetText(KeyFilter))
	ui.filterNameEntry.SetPlaceHolder(l.GetText(KeyFilterName))
	ui.filterFoodGroupEntry.SetPlaceHolder(l.GetText(KeyFilterFoodGroup))
	ui.filterMaxCaloriesEntry.SetPlaceHolder(l.GetText(KeyFilterMaxCalories))
	ui.filterBtn.SetText(l.GetText(KeyFilter))
	ui.showAllBtn.SetText(l.GetText(KeyShowAll))
	ui.clearAllBtn.SetText(l.GetText(KeyClearAll))

	ui.updateFilterStatus()
	ui.showRecipeDetails(ui.store.Selected())
	ui.recipeList.Refresh()
}

// onAddRecipe handles the Add Recipe button
func (ui *RootUI) onAddRecipe() {
	recipe, err := ui.store.AddRecipe(ui.recipeNameEntry.Text)
	if err != nil {
		ui.showError(err)
		return
	}

	ui.recipeNameEntry.SetText("")
	ui.showSortedRecipes()
	ui.selectInList(recipe)
	ui.showRecipeDetails(recipe)
}

// onAddIngredient handles the Add Ingredient button
func (ui *RootUI) onAddIngredient() {
	recipe := ui.store.Selected()
	report, err := ui.store.AddIngredient(recipe, recipes.IngredientInput{
		Name:        ui.ingredientNameEntry.Text,
		Quantity:    ui.quantityEntry.Text,
		Measurement: ui.measurementEntry.Text,
		Calories:    ui.caloriesEntry.Text,
		FoodGroup:   ui.foodGroupEntry.Text,
	})
	if err != nil {
		ui.showError(err)
		return
	}

	ui.ingredientNameEntry.SetText("")
	ui.quantityEntry.SetText("")
	ui.measurementEntry.SetText("")
	ui.caloriesEntry.SetText("")
	ui.foodGroupEntry.SetText("")

	ui.showRecipeDetails(recipe)
	ui.recipeList.Refresh()

	if report.OverLimit {
		ui.warnCalorieLimit(recipe, report.Total)
	}
}

// onAddStep handles the Add Step button
func (ui *RootUI) onAddStep() {
	recipe := ui.store.Selected()
	if _, err := ui.store.AddStep(recipe, ui.stepEntry.Text); err != nil {
		ui.showError(err)
		return
	}

	ui.stepEntry.SetText("")
	ui.stepList.Refresh()
	ui.recipeList.Refresh()
}

// onScale validates the scale factor. Ingredient quantities are not changed.
func (ui *RootUI) onScale() {
	text := strings.TrimSpace(ui.scaleEntry.Text)
	if text == "" {
		ui.showMessage(KeyErrEnterScale)
		return
	}
	factor, err := strconv.ParseFloat(text, 64)
	if err != nil {
		ui.showMessage(KeyErrInvalidScale)
		return
	}

	ui.log.Debug("scale accepted", zap.Float64("factor", factor))
	ui.ingredientList.Refresh()
}

// onFilter shows the recipes of the snapshot that match the filter panel.
// Results keep snapshot order and are not re-sorted.
func (ui *RootUI) onFilter() {
	criteria := recipes.NewCriteria(
		ui.filterNameEntry.Text,
		ui.filterFoodGroupEntry.Text,
		ui.filterMaxCaloriesEntry.Text,
	)

	result, err := ui.store.FilterSnapshot(criteria)
	if err != nil {
		ui.log.Error("filter failed", zap.Error(err))
		ui.showMessage(KeyErrFiltering)
		return
	}

	ui.visible = result
	ui.filtered = true
	ui.recipeList.UnselectAll()
	ui.recipeList.Refresh()
	ui.updateFilterStatus()

	// A recipe hidden by the filter can no longer be edited
	if selected := ui.store.Selected(); selected != nil && !slices.Contains(result, selected) {
		ui.store.Select("")
		ui.showRecipeDetails(nil)
		return
	}
	ui.selectInList(ui.store.Selected())
}

// onShowAll redisplays the whole store in name order
func (ui *RootUI) onShowAll() {
	ui.showSortedRecipes()
	ui.selectInList(ui.store.Selected())
}

// onClearAll empties the store and resets every input and list
func (ui *RootUI) onClearAll() {
	ui.store.ClearAll()

	for _, entry := range []*widget.Entry{
		ui.recipeNameEntry,
		ui.ingredientNameEntry,
		ui.quantityEntry,
		ui.measurementEntry,
		ui.caloriesEntry,
		ui.foodGroupEntry,
		ui.stepEntry,
		ui.scaleEntry,
		ui.filterNameEntry,
		ui.filterFoodGroupEntry,
		ui.filterMaxCaloriesEntry,
	} {
		entry.SetText("")
	}

	ui.recipeList.UnselectAll()
	ui.showSortedRecipes()
	ui.showRecipeDetails(nil)
	ui.hideNotification()
}

// onRecipeSelected makes the clicked recipe current
func (ui *RootUI) onRecipeSelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.visible) {
		return
	}
	recipe, ok := ui.store.Select(ui.visible[id].ID)
	if !ok {
		ui.showRecipeDetails(nil)
		return
	}
	ui.showRecipeDetails(recipe)
	if !ui.reselecting && model.ExceedsLimit(recipe.TotalCalories()) {
		ui.showNotification(ui.calorieWarningText(recipe, recipe.TotalCalories()))
	}
}

// updateRecipeItem binds a list row to the visible recipe at id
func (ui *RootUI) updateRecipeItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.visible) {
		return
	}
	if row, ok := item.(*RecipeRow); ok {
		row.UpdateRecipe(ui.visible[id])
	}
}

// showSortedRecipes replaces the visible list with the sorted store
func (ui *RootUI) showSortedRecipes() {
	ui.visible = ui.store.Recipes()
	ui.filtered = false
	ui.recipeList.Refresh()
	ui.updateFilterStatus()
}

// selectInList highlights recipe in the recipe list when it is visible
func (ui *RootUI) selectInList(recipe *model.Recipe) {
	if recipe == nil {
		return
	}
	for i, r := range ui.visible {
		if r.ID == recipe.ID {
			ui.reselecting = true
			ui.recipeList.Select(i)
			ui.reselecting = false
			return
		}
	}
}

// showRecipeDetails renders the selected recipe, or clears the panel for nil
func (ui *RootUI) showRecipeDetails(recipe *model.Recipe) {
	if recipe == nil {
		ui.selectedLabel.SetText(ui.localization.GetText(KeySelectedRecipe) + ":")
		ui.totalCaloriesLabel.SetText("")
		ui.totalCaloriesLabel.Importance = widget.MediumImportance
	} else {
		ui.selectedLabel.SetText(ui.localization.GetText(KeySelectedRecipe) + ": " + singleLine(recipe.Name))
		total := recipe.TotalCalories()
		ui.totalCaloriesLabel.SetText(ui.localization.GetText(KeyTotalCalories) + ": " + fmt.Sprintf(CaloriesFormat, total))
		if model.ExceedsLimit(total) {
			ui.totalCaloriesLabel.Importance = widget.WarningImportance
		} else {
			ui.totalCaloriesLabel.Importance = widget.MediumImportance
		}
	}
	ui.totalCaloriesLabel.Refresh()
	ui.ingredientList.Refresh()
	ui.stepList.Refresh()
}

func (ui *RootUI) updateFilterStatus() {
	if !ui.filtered {
		ui.filterStatusLabel.SetText("")
		return
	}
	ui.filterStatusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilterResult), len(ui.visible), ui.store.Len()))
}

func (ui *RootUI) selectedIngredients() []model.Ingredient {
	if recipe := ui.store.Selected(); recipe != nil {
		return recipe.Ingredients
	}
	return nil
}

func (ui *RootUI) selectedSteps() []model.RecipeStep {
	if recipe := ui.store.Selected(); recipe != nil {
		return recipe.Steps
	}
	return nil
}

// showError reports a failed store operation in a modal dialog
func (ui *RootUI) showError(err error) {
	ui.log.Debug("input rejected", zap.Error(err))
	dialog.ShowError(errors.New(ui.errorMessage(err)), ui.window)
}

// showMessage shows the localized text for key in an error dialog
func (ui *RootUI) showMessage(key string) {
	dialog.ShowError(errors.New(ui.localization.GetText(key)), ui.window)
}

// errorMessage returns the localized text for a store error
func (ui *RootUI) errorMessage(err error) string {
	for cause, key := range validationMessages {
		if errors.Is(err, cause) {
			return ui.localization.GetText(key)
		}
	}
	if errors.Is(err, recipes.ErrFilterFailed) {
		return ui.localization.GetText(KeyErrFiltering)
	}
	return err.Error()
}

func (ui *RootUI) calorieWarningText(recipe *model.Recipe, total int) string {
	return fmt.Sprintf(ui.localization.GetText(KeyCalorieLimit), singleLine(recipe.Name), model.CalorieLimit, total)
}

// warnCalorieLimit reports a recipe over the calorie limit without blocking input
func (ui *RootUI) warnCalorieLimit(recipe *model.Recipe, total int) {
	message := ui.calorieWarningText(recipe, total)
	ui.showNotification(IconWarning + " " + message)

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyCalorieLimitTitle),
		Content: message,
	})
	ui.log.Info("calorie limit exceeded",
		zap.String("recipe", recipe.Name),
		zap.Int("totalCalories", total),
		zap.Int("limit", model.CalorieLimit))
}

// showNotification displays a message in the notification panel. The panel
// hides itself after NotificationAutoHide unless a newer message replaced it.
func (ui *RootUI) showNotification(message string) {
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if seq == ui.notificationSeq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationLabel.SetText("")
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(lang string) {
		ui.onLanguageChange(lang)
		ui.showNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

// saveWindowSize remembers the window size for the next run
func (ui *RootUI) saveWindowSize() {
	size := ui.window.Canvas().Size()
	ui.settings.SetWindowSize(int(size.Width), int(size.Height))
}

// formatIngredient renders an ingredient as a list line
func formatIngredient(i model.Ingredient) string {
	text := fmt.Sprintf("%d %s %s", i.Quantity, i.Measurement, singleLine(i.Name))
	text += MiddleDotSeparator + fmt.Sprintf(CaloriesFormat, i.Calories)
	if i.FoodGroup != "" {
		text += MiddleDotSeparator + i.FoodGroup
	}
	return text
}

// formatStep renders a numbered step
func formatStep(n int, step model.RecipeStep) string {
	return fmt.Sprintf(StepFormat, n, singleLine(step.Text))
}
