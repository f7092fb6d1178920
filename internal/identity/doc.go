package identity

// Package identity derives stable avatar fallbacks from a display name or an
// explicit initials override: 1-2 uppercase initials plus a color picked
// deterministically from a fixed palette. The same input always produces the
// same output, so avatars keep their color across sessions and platforms.
