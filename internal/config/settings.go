package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/user-form/internal/store"
)

// Settings keys for Fyne preferences
const (
	KeyRecordsFile    = "records_file"
	KeyLanguage       = "app_language"
	KeyResetAfterSave = "reset_after_save"
)

// Default values
const (
	DefaultRecordsFile    = store.DefaultFileName
	DefaultLanguage       = "system"
	DefaultResetAfterSave = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRecordsFile returns the configured records file path
func (s *Settings) GetRecordsFile() string {
	path := s.app.Preferences().String(KeyRecordsFile)
	if path == "" {
		s.SetRecordsFile(DefaultRecordsFile)
		return DefaultRecordsFile
	}
	return path
}

// SetRecordsFile sets the records file path; empty restores the default
func (s *Settings) SetRecordsFile(path string) {
	if path == "" {
		path = DefaultRecordsFile
	}
	s.app.Preferences().SetString(KeyRecordsFile, path)
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
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetResetAfterSave returns whether the form is cleared after a successful save
func (s *Settings) GetResetAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyResetAfterSave, DefaultResetAfterSave)
}

// SetResetAfterSave sets whether the form is cleared after a successful save
func (s *Settings) SetResetAfterSave(reset bool) {
	s.app.Preferences().SetBool(KeyResetAfterSave, reset)
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
