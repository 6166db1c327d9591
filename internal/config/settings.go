package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700

	MinWindowWidth  = 640
	MinWindowHeight = 480
)

// Settings manages user preferences that outlive a single run
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetWindowSize returns the last saved window size, falling back to the
// provided defaults when nothing valid has been stored
func (s *Settings) GetWindowSize(defaultWidth, defaultHeight int) (int, int) {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, defaultWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, defaultHeight)
	if width < MinWindowWidth || height < MinWindowHeight {
		return defaultWidth, defaultHeight
	}
	return width, height
}

// SetWindowSize stores the window size, clamped to the minimum size
func (s *Settings) SetWindowSize(width, height int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}
