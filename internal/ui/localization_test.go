package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Default language = %s, expected en", l.GetCurrentLanguage())
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Language = %s, expected ru", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyMembers); text != "Участники" {
		t.Errorf("GetText(KeyMembers) = %s, expected Участники", text)
	}

	// Unknown language keeps the current one
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Language after unknown code = %s, expected ru", l.GetCurrentLanguage())
	}

	// System resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Language after system = %s, expected en", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("nonexistent_key"); text != "nonexistent_key" {
		t.Errorf("Unknown key should fall back to key itself, got %s", text)
	}

	// Every key defined for English must exist in all languages
	for lang, texts := range l.texts {
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s missing key %s", lang, key)
			}
		}
	}
}
