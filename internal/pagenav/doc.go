package pagenav

// Package pagenav computes the visible page-marker window for pagination
// controls. It is a pure computation layer: widgets map the returned marker
// sequence to buttons and render ellipsis markers as non-interactive gaps.
