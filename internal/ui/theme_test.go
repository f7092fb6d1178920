package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestAvatarPalette(t *testing.T) {
	palette := AvatarPalette()
	if len(palette) == 0 {
		t.Fatal("Avatar palette must not be empty")
	}

	seen := make(map[interface{}]bool)
	for _, c := range palette {
		if seen[c] {
			t.Errorf("Palette contains duplicate color %v", c)
		}
		seen[c] = true
	}
}

func TestDashboardTheme_BackgroundPerVariant(t *testing.T) {
	dt := NewDashboardTheme()

	light := dt.Color(theme.ColorNameBackground, theme.VariantLight)
	dark := dt.Color(theme.ColorNameBackground, theme.VariantDark)
	if light == dark {
		t.Error("Background should differ between light and dark variants")
	}
}

func TestDashboardTheme_PinnedVariant(t *testing.T) {
	pinned := NewDashboardThemeWithVariant(theme.VariantDark)

	// A pinned theme ignores the variant the framework passes in
	fromLight := pinned.Color(theme.ColorNameBackground, theme.VariantLight)
	fromDark := pinned.Color(theme.ColorNameBackground, theme.VariantDark)
	if fromLight != fromDark {
		t.Error("Pinned theme should render the same variant regardless of system setting")
	}
}

func TestDashboardTheme_CompactSizes(t *testing.T) {
	dt := NewDashboardTheme()

	if size := dt.Size(theme.SizeNameText); size != 13 {
		t.Errorf("Text size = %v, expected 13", size)
	}
	if size := dt.Size(theme.SizeNamePadding); size >= theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Error("Compact padding should be below the default theme's")
	}
}

func TestDashboardTheme_DelegatesUnknown(t *testing.T) {
	dt := NewDashboardTheme()

	name := theme.ColorNameHover
	if dt.Color(name, theme.VariantLight) != theme.DefaultTheme().Color(name, theme.VariantLight) {
		t.Error("Unhandled color names should delegate to the default theme")
	}

	var style fyne.TextStyle
	if dt.Font(style) != theme.DefaultTheme().Font(style) {
		t.Error("Fonts should delegate to the default theme")
	}
}
