package ui

// Package ui contains the Fyne-based component kit and the dashboard shell
// composing it: avatars, pagination, hub cards, the entity drawer, and the
// settings dialog. Widgets take a layout Profile by injection so desktop and
// mobile rendering is decided once at composition time, not per call site.
// All UI strings are localized via Localization.
