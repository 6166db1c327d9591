package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-book/internal/config"
)

func TestSettingsDialogSavesLanguage(t *testing.T) {
	a := test.NewApp()
	w := a.NewWindow("settings")
	defer w.Close()

	settings := config.NewSettings(a)
	var saved string
	sd := NewSettingsDialog(w, settings, NewLocalization(), func(lang string) { saved = lang })

	sd.Show()
	require.Equal(t, "System Default", sd.languageSelect.Selected)
	assert.Len(t, sd.languageSelect.Options, len(settings.GetLanguageOptions()))

	sd.languageSelect.SetSelected("Português")
	sd.onSave(true)

	assert.Equal(t, "pt", saved)
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestSettingsDialogCancel(t *testing.T) {
	a := test.NewApp()
	w := a.NewWindow("settings")
	defer w.Close()

	settings := config.NewSettings(a)
	called := false
	sd := NewSettingsDialog(w, settings, NewLocalization(), func(string) { called = true })

	sd.languageSelect.SetSelected("Русский")
	sd.onSave(false)

	assert.False(t, called)
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())
}
