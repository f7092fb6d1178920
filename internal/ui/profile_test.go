package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/vibbs/hubdeck/internal/config"
)

func TestDesktopProfile(t *testing.T) {
	profile := DesktopProfile()
	if profile.Mobile {
		t.Error("Desktop profile should not be mobile")
	}
	if profile.GridColumns != 3 {
		t.Errorf("Desktop GridColumns = %d, expected 3", profile.GridColumns)
	}
	if profile.MaxVisiblePages != DefaultMaxVisiblePages {
		t.Errorf("Desktop MaxVisiblePages = %d, expected %d", profile.MaxVisiblePages, DefaultMaxVisiblePages)
	}
}

func TestMobileProfile(t *testing.T) {
	profile := MobileProfile()
	if !profile.Mobile {
		t.Error("Mobile profile should be mobile")
	}
	if profile.GridColumns != 1 {
		t.Errorf("Mobile GridColumns = %d, expected 1", profile.GridColumns)
	}
	if profile.AvatarSize < MinTouchTargetSize {
		t.Errorf("Mobile avatar size %v below touch target minimum %v", profile.AvatarSize, MinTouchTargetSize)
	}
	if profile.Spacing <= DesktopProfile().Spacing {
		t.Error("Mobile spacing should exceed desktop spacing")
	}
}

func TestProfileForMode(t *testing.T) {
	test.NewApp()

	if p := ProfileForMode(config.ProfileDesktop); p.Mobile {
		t.Error("ProfileForMode(desktop) returned a mobile profile")
	}
	if p := ProfileForMode(config.ProfileMobile); !p.Mobile {
		t.Error("ProfileForMode(mobile) returned a desktop profile")
	}

	// Auto resolves from the current device; just ensure it picks one of the
	// two canonical profiles
	p := ProfileForMode(config.ProfileAuto)
	if p == nil {
		t.Fatal("ProfileForMode(auto) returned nil")
	}
}
