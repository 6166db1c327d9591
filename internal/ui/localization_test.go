package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Recipe Book", l.GetText(KeyAppTitle))
	assert.Len(t, l.GetAvailableLanguages(), 3)
}

func TestLocalizationSetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected string
	}{
		{"portuguese", "pt", "pt"},
		{"russian", "ru", "ru"},
		{"system falls back to english", "system", "en"},
		{"unknown keeps current", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			assert.Equal(t, tt.expected, l.GetCurrentLanguage())
		})
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	delete(l.texts["pt"], KeyShowAll)
	assert.Equal(t, "Show All", l.GetText(KeyShowAll))
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !assert.True(t, ok, "missing translations for %s", lang) {
			continue
		}
		for key := range l.texts["en"] {
			assert.NotEmpty(t, texts[key], "%s is missing %s", lang, key)
		}
	}
}
