package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RecipeTheme is a compact theme with warm accents for the recipe form
type RecipeTheme struct{}

// NewRecipeTheme creates the application theme
func NewRecipeTheme() fyne.Theme {
	return &RecipeTheme{}
}

// Color returns theme colors
func (t *RecipeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 230, G: 108, B: 36, A: 255} // Carrot orange for actions
	case theme.ColorNameSuccess:
		return color.RGBA{R: 67, G: 140, B: 62, A: 255} // Herb green
	case theme.ColorNameWarning:
		return color.RGBA{R: 242, G: 169, B: 0, A: 255} // Calorie warnings
	case theme.ColorNameError:
		return color.RGBA{R: 176, G: 32, B: 32, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 28, G: 24, B: 22, A: 255}
		}
		return color.RGBA{R: 252, G: 249, B: 244, A: 255} // Cream
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *RecipeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RecipeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments for the dense form
func (t *RecipeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
