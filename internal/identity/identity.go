package identity

import (
	"image/color"
	"strings"
	"unicode"
)

// defaultSeed feeds the color hash when neither initials nor a display name
// is available, so anonymous avatars still get a stable palette entry.
const defaultSeed = "default"

// Identity is the derived avatar fallback for one user or entity.
type Identity struct {
	Initials string      // 1-2 uppercase characters, empty when Unknown
	Unknown  bool        // true when no name or initials were supplied
	Color    color.Color // palette entry, stable for equal input
}

// Derive computes initials and a palette color for the given inputs.
// An explicit initials string wins over the display name; when both are
// empty the result is the unknown sentinel colored by the default seed.
// The color hash runs over the same string the initials came from, so
// toggling the explicit override only changes the color when the text
// actually differs. The palette must be non-empty.
//
// Derive never fails and is safe for concurrent use.
func Derive(explicitInitials, displayName string, palette []color.Color) Identity {
	var id Identity
	source := defaultSeed

	switch {
	case explicitInitials != "":
		source = explicitInitials
		id.Initials = upperPrefix(explicitInitials, 2)
	case displayName != "":
		source = displayName
		id.Initials = initialsFromName(displayName)
	default:
		id.Unknown = true
	}

	if len(palette) > 0 {
		id.Color = palette[paletteIndex(source, len(palette))]
	}
	return id
}

// upperPrefix returns the first n characters of s, uppercased.
func upperPrefix(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if n == 0 {
			break
		}
		b.WriteRune(unicode.ToUpper(r))
		n--
	}
	return b.String()
}

// initialsFromName takes the first character of each of the first two
// whitespace-separated words. A single-word name yields one character.
func initialsFromName(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, word := range words {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// hashString computes a 32-bit signed rolling hash (h*31 + c) over the full
// string, with int32 wraparound. Hashing the whole string rather than just
// the initials keeps the color distribution reasonable for similar names.
func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = int32(r) + ((h << 5) - h)
	}
	return h
}

// paletteIndex maps a source string to an index in [0, size).
func paletteIndex(source string, size int) int {
	h := int64(hashString(source))
	if h < 0 {
		h = -h
	}
	return int(h % int64(size))
}
