package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the light/dark appearance
type ThemeVariant string

const (
	VariantSystem ThemeVariant = "system"
	VariantLight  ThemeVariant = "light"
	VariantDark   ThemeVariant = "dark"
)

// LayoutProfileMode selects how the layout profile is chosen at startup
type LayoutProfileMode string

const (
	ProfileAuto    LayoutProfileMode = "auto"
	ProfileDesktop LayoutProfileMode = "desktop"
	ProfileMobile  LayoutProfileMode = "mobile"
)

// Settings keys for Fyne preferences
const (
	KeyThemeVariant  = "theme_variant"
	KeyLanguage      = "app_language"
	KeyPageSize      = "list_page_size"
	KeyLayoutProfile = "layout_profile"
)

// Default values
const (
	DefaultThemeVariant  = VariantSystem
	DefaultLanguage      = "system"
	DefaultPageSize      = 10
	DefaultLayoutProfile = ProfileAuto

	MinPageSize = 5
	MaxPageSize = 50
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := s.app.Preferences().String(KeyThemeVariant)
	if variant == "" {
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
	return ThemeVariant(variant)
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variant options
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{VariantSystem, VariantLight, VariantDark}
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

// GetPageSize returns the configured list page size
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the list page size, clamped to a sane range
func (s *Settings) SetPageSize(size int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetLayoutProfile returns how the layout profile should be chosen
func (s *Settings) GetLayoutProfile() LayoutProfileMode {
	mode := s.app.Preferences().String(KeyLayoutProfile)
	if mode == "" {
		s.SetLayoutProfile(DefaultLayoutProfile)
		return DefaultLayoutProfile
	}
	return LayoutProfileMode(mode)
}

// SetLayoutProfile sets the layout profile selection mode
func (s *Settings) SetLayoutProfile(mode LayoutProfileMode) {
	s.app.Preferences().SetString(KeyLayoutProfile, string(mode))
}

// GetLayoutProfileOptions returns available layout profile modes
func (s *Settings) GetLayoutProfileOptions() []LayoutProfileMode {
	return []LayoutProfileMode{ProfileAuto, ProfileDesktop, ProfileMobile}
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
