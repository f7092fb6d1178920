package pagenav

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidArgument is returned when a caller passes out-of-range input.
// Callers are expected to clamp page state before calling; hitting this error
// is a programming bug, not a user-facing condition.
var ErrInvalidArgument = errors.New("pagenav: invalid argument")

// Marker is a single unit in a pagination control: either a concrete page
// number or an ellipsis placeholder for an elided range of pages.
type Marker struct {
	Page     int  // 1-based page number, 0 when Ellipsis is set
	Ellipsis bool // true for a non-interactive gap marker
}

// PageMarker returns a numeric marker for the given page.
func PageMarker(page int) Marker {
	return Marker{Page: page}
}

// EllipsisMarker returns a non-interactive gap marker.
func EllipsisMarker() Marker {
	return Marker{Ellipsis: true}
}

// String returns the marker as it would be rendered ("…" or the page number)
func (m Marker) String() string {
	if m.Ellipsis {
		return "…"
	}
	return strconv.Itoa(m.Page)
}

// ComputeWindow returns the ordered marker sequence to render for a
// pagination control showing currentPage of totalPages, with at most
// maxVisible numeric markers in the contiguous window around currentPage.
// The first and last pages are always reachable: they are emitted as extra
// numeric markers (with an ellipsis when there is a genuine gap) whenever
// they fall outside the window.
//
// The window is shifted to stay fully populated near either edge. The
// near-end shift is applied after the near-start one and wins when both
// fire, which only happens when totalPages barely exceeds maxVisible.
func ComputeWindow(currentPage, totalPages, maxVisible int) ([]Marker, error) {
	if totalPages < 1 {
		return nil, fmt.Errorf("%w: totalPages=%d, must be >= 1", ErrInvalidArgument, totalPages)
	}
	if maxVisible < 1 {
		return nil, fmt.Errorf("%w: maxVisible=%d, must be >= 1", ErrInvalidArgument, maxVisible)
	}
	if currentPage < 1 || currentPage > totalPages {
		return nil, fmt.Errorf("%w: currentPage=%d, must be in [1, %d]", ErrInvalidArgument, currentPage, totalPages)
	}

	half := maxVisible / 2

	start := currentPage - half
	if start < 1 {
		start = 1
	}
	end := currentPage + half
	if end > totalPages {
		end = totalPages
	}

	// Near the start the window would be short of maxVisible pages, so it is
	// pinned to [1, maxVisible]. Same near the end, pinned to the last
	// maxVisible pages. Order matters: the near-end check runs second.
	if currentPage <= half {
		end = maxVisible
		if end > totalPages {
			end = totalPages
		}
	}
	if currentPage > totalPages-half {
		start = totalPages - maxVisible + 1
		if start < 1 {
			start = 1
		}
	}

	markers := make([]Marker, 0, end-start+5)

	if start > 1 {
		markers = append(markers, PageMarker(1))
		if start > 2 {
			markers = append(markers, EllipsisMarker())
		}
	}
	for page := start; page <= end; page++ {
		markers = append(markers, PageMarker(page))
	}
	if end < totalPages {
		if end < totalPages-1 {
			markers = append(markers, EllipsisMarker())
		}
		markers = append(markers, PageMarker(totalPages))
	}

	return markers, nil
}
