package ui

import (
	"fyne.io/fyne/v2"

	"github.com/vibbs/hubdeck/internal/config"
)

// Profile carries the layout decisions that differ between desktop and
// mobile rendering. It is chosen once at application composition time and
// injected into widgets, so individual components never branch on the
// current device themselves.
type Profile struct {
	Mobile bool

	Spacing float32
	Padding float32

	AvatarSize    float32
	CardMinWidth  float32
	CardMinHeight float32
	DrawerWidth   float32

	GridColumns     int
	MaxVisiblePages int
}

// DesktopProfile returns the layout profile for desktop rendering
func DesktopProfile() *Profile {
	return &Profile{
		Mobile:          false,
		Spacing:         8,
		Padding:         10,
		AvatarSize:      AvatarSizeMedium,
		CardMinWidth:    CardMinWidth,
		CardMinHeight:   CardMinHeight,
		DrawerWidth:     DrawerWidth,
		GridColumns:     3,
		MaxVisiblePages: DefaultMaxVisiblePages,
	}
}

// MobileProfile returns the layout profile for mobile rendering, with larger
// touch targets and a single-column grid
func MobileProfile() *Profile {
	return &Profile{
		Mobile:          true,
		Spacing:         16,
		Padding:         20,
		AvatarSize:      AvatarSizeLarge,
		CardMinWidth:    MobileCardMinWidth,
		CardMinHeight:   MobileCardMinHeight,
		DrawerWidth:     MobileDrawerWidth,
		GridColumns:     1,
		MaxVisiblePages: MobileMaxVisiblePages,
	}
}

// ProfileForMode resolves the profile from the configured mode, falling back
// to device detection for ProfileAuto
func ProfileForMode(mode config.LayoutProfileMode) *Profile {
	switch mode {
	case config.ProfileDesktop:
		return DesktopProfile()
	case config.ProfileMobile:
		return MobileProfile()
	default:
		if fyne.CurrentDevice().IsMobile() {
			return MobileProfile()
		}
		return DesktopProfile()
	}
}
