package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconWarning  = "⚠"
	IconClose    = "×"
	IconFilter   = "🔍"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CaloriesFormat     = "%d kcal"
	StepFormat         = "%d. %s"
)

// Layout sizing (RecipeRow / lists)
const (
	CaloriesLabelWidth float32 = 90

	RowMinWidth  float32 = 260
	RowMinHeight float32 = 48

	RecipeListMinHeight     float32 = 240
	IngredientListMinHeight float32 = 180
	StepListMinHeight       float32 = 140
	SidePanelWidth          float32 = 320
)

// Notification panel behavior
const (
	NotificationAutoHide = 6 * time.Second
)
