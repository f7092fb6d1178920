package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	EllipsisText       = "…"
	UnknownGlyph       = "?"
	OverflowFormat     = "+%d"
	ProgressFormat     = "%d%%"
)

// Avatar sizing
const (
	AvatarSizeSmall  float32 = 24
	AvatarSizeMedium float32 = 32
	AvatarSizeLarge  float32 = 48

	// Ratio of initials text size to avatar diameter
	AvatarTextRatio float32 = 0.4
)

// HubCard sizing
const (
	CardMinWidth   float32 = 260
	CardMinHeight  float32 = 120
	MaxCardAvatars         = 4

	MobileCardMinWidth  float32 = 220
	MobileCardMinHeight float32 = 140
)

// EntityDrawer sizing
const (
	DrawerWidth       float32 = 360
	MobileDrawerWidth float32 = 300
)

// Pagination
const (
	DefaultMaxVisiblePages = 5
	MobileMaxVisiblePages  = 3
	PageButtonMinWidth     float32 = 36
)

// Touch target minimum sizes (iOS/Android guidelines)
const (
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
