package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyAllFieldsMandatory); got != "All fields are mandatory." {
		t.Errorf("GetText(KeyAllFieldsMandatory) = %q", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeySaveRecord); got != "Сохранить запись" {
		t.Errorf("GetText(KeySaveRecord) in ru = %q", got)
	}

	if got := l.GetText("unknown_key"); got != "unknown_key" {
		t.Errorf("GetText should fall back to the key, got %q", got)
	}
}

func TestLocalization_UnknownLanguageIgnored(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")
	l.SetLanguage("de")

	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay 'pt', got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		if len(l.texts[lang]) != len(l.texts["en"]) {
			t.Errorf("language %s has %d texts, expected %d", lang, len(l.texts[lang]), len(l.texts["en"]))
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"ru_RU.UTF-8", "ru"},
		{"pt_BR.UTF-8", "pt"},
		{"pt_PT", "pt"},
		{"en_US.UTF-8", "en"},
		{"en_GB@euro", "en"},
		{"C", "en"},
		{"ja_JP.UTF-8", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := matchLanguage(tt.locale); got != tt.expected {
				t.Errorf("matchLanguage(%q) = %s, expected %s", tt.locale, got, tt.expected)
			}
		})
	}
}

func TestSetLanguage_System(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ru_RU.UTF-8")

	l := NewLocalization()
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected system language 'ru', got %s", l.GetCurrentLanguage())
	}
}
