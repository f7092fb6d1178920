package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// avatarPalette is the fixed, ordered set of color tokens used for
// deterministic identity-to-color assignment. Declared statically and never
// mutated at runtime; reordering or changing entries changes every derived
// avatar color.
var avatarPalette = []color.Color{
	color.RGBA{R: 229, G: 57, B: 53, A: 255},  // Red
	color.RGBA{R: 142, G: 36, B: 170, A: 255}, // Purple
	color.RGBA{R: 57, G: 73, B: 171, A: 255},  // Indigo
	color.RGBA{R: 2, G: 136, B: 209, A: 255},  // Light blue
	color.RGBA{R: 0, G: 137, B: 123, A: 255},  // Teal
	color.RGBA{R: 104, G: 159, B: 56, A: 255}, // Light green
	color.RGBA{R: 251, G: 140, B: 0, A: 255},  // Orange
	color.RGBA{R: 84, G: 110, B: 122, A: 255}, // Blue gray
}

// AvatarPalette returns the fixed avatar color palette
func AvatarPalette() []color.Color {
	return avatarPalette
}

// DashboardTheme defines a compact theme for the dashboard with reduced
// padding and font sizes
type DashboardTheme struct {
	// Variant forces light or dark rendering; nil follows the system
	Variant *fyne.ThemeVariant
}

// NewDashboardTheme creates a theme following the system variant
func NewDashboardTheme() fyne.Theme {
	return &DashboardTheme{}
}

// NewDashboardThemeWithVariant creates a theme pinned to the given variant
func NewDashboardThemeWithVariant(variant fyne.ThemeVariant) fyne.Theme {
	return &DashboardTheme{Variant: &variant}
}

// Color returns theme colors
func (t *DashboardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.Variant != nil {
		variant = *t.Variant
	}

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for done entities
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for review state
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
