package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestRecordsFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetRecordsFile()
	if path != DefaultRecordsFile {
		t.Errorf("Expected default records file %s, got %s", DefaultRecordsFile, path)
	}

	// Test setting custom value
	customPath := "/custom/records.txt"
	settings.SetRecordsFile(customPath)

	retrievedPath := settings.GetRecordsFile()
	if retrievedPath != customPath {
		t.Errorf("Expected records file %s, got %s", customPath, retrievedPath)
	}

	// Test empty path defaults back
	settings.SetRecordsFile("")
	if settings.GetRecordsFile() != DefaultRecordsFile {
		t.Errorf("Empty path should default to %s, got %s", DefaultRecordsFile, settings.GetRecordsFile())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestResetAfterSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetResetAfterSave() != DefaultResetAfterSave {
		t.Errorf("Expected default reset-after-save %v", DefaultResetAfterSave)
	}

	settings.SetResetAfterSave(false)
	if settings.GetResetAfterSave() {
		t.Error("Expected reset-after-save to be false after setting it")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
