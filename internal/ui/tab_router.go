package ui

import (
	"fmt"
)

// TabSpec describes one tab a router exposes
type TabSpec struct {
	ID    string
	Title string
}

// TabRouter is the navigation port the entity drawer consumes. The drawer
// never owns tab state; the application supplies an adapter at composition
// time, so the same drawer works against an in-memory router or a host
// navigation stack.
type TabRouter interface {
	// Tabs returns the available tabs in display order
	Tabs() []TabSpec

	// Current returns the ID of the selected tab
	Current() string

	// Select switches to the tab with the given ID
	Select(id string) error

	// OnChange registers a callback fired after every successful Select
	OnChange(fn func(id string))
}

// MemoryTabRouter is the default in-memory TabRouter adapter. The first tab
// is selected initially. Not safe for concurrent use; drive it from the UI
// goroutine.
type MemoryTabRouter struct {
	tabs      []TabSpec
	current   string
	listeners []func(id string)
}

// NewMemoryTabRouter creates a router over the given tabs
func NewMemoryTabRouter(tabs ...TabSpec) *MemoryTabRouter {
	r := &MemoryTabRouter{tabs: tabs}
	if len(tabs) > 0 {
		r.current = tabs[0].ID
	}
	return r
}

// Tabs returns the available tabs in display order
func (r *MemoryTabRouter) Tabs() []TabSpec {
	return r.tabs
}

// Current returns the ID of the selected tab
func (r *MemoryTabRouter) Current() string {
	return r.current
}

// Select switches to the tab with the given ID
func (r *MemoryTabRouter) Select(id string) error {
	for _, tab := range r.tabs {
		if tab.ID != id {
			continue
		}
		if r.current != id {
			r.current = id
			for _, fn := range r.listeners {
				fn(id)
			}
		}
		return nil
	}
	return fmt.Errorf("tab router: unknown tab %q", id)
}

// OnChange registers a callback fired after every successful Select
func (r *MemoryTabRouter) OnChange(fn func(id string)) {
	r.listeners = append(r.listeners, fn)
}
