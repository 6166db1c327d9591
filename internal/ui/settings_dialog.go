package ui

import (
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-book/internal/config"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 360
	SettingsDialogHeight = 200
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(language string)

	languageSelect *widget.Select
	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(language string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(language string)) *SettingsDialog {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	labels := sd.settings.GetLanguageOptions()
	options := make([]string, 0, len(labels))
	for _, code := range slices.Sorted(maps.Keys(labels)) {
		name := labels[code]
		sd.languageCodes[name] = code
		options = append(options, name)
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	if name, ok := sd.settings.GetLanguageOptions()[current]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// selectedLanguage returns the code of the selected language, or ""
func (sd *SettingsDialog) selectedLanguage() string {
	return sd.languageCodes[sd.languageSelect.Selected]
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	lang := sd.selectedLanguage()
	if lang == "" {
		return
	}
	sd.settings.SetLanguage(lang)

	if sd.onSaved != nil {
		sd.onSaved(lang)
	}
}
