package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/pagenav"
)

// PaginationOptions is the closed set of recognized options for a Pagination control
type PaginationOptions struct {
	TotalPages  int
	CurrentPage int
	MaxVisible  int // numeric window size, 0 uses the profile default
	OnSelect    func(page int)
}

// Pagination renders a row of page buttons with ellipsis gaps, driven by
// pagenav.ComputeWindow. Ellipsis markers are non-interactive.
type Pagination struct {
	widget.BaseWidget

	opts    PaginationOptions
	profile *Profile
	row     *fyne.Container
}

// NewPagination creates a new pagination control
func NewPagination(opts PaginationOptions, profile *Profile) *Pagination {
	p := &Pagination{
		opts:    opts,
		profile: profile,
		row:     container.NewHBox(),
	}
	if p.opts.CurrentPage < 1 {
		p.opts.CurrentPage = 1
	}
	if p.opts.TotalPages < 1 {
		p.opts.TotalPages = 1
	}
	p.ExtendBaseWidget(p)
	p.rebuild()
	return p
}

// CurrentPage returns the currently selected page
func (p *Pagination) CurrentPage() int {
	return p.opts.CurrentPage
}

// TotalPages returns the total page count
func (p *Pagination) TotalPages() int {
	return p.opts.TotalPages
}

// SetPage selects a page, clamping to the valid range, and fires OnSelect
// when the selection changed
func (p *Pagination) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if page > p.opts.TotalPages {
		page = p.opts.TotalPages
	}
	if page == p.opts.CurrentPage {
		return
	}
	p.opts.CurrentPage = page
	p.rebuild()
	p.Refresh()
	if p.opts.OnSelect != nil {
		p.opts.OnSelect(page)
	}
}

// SetTotalPages updates the page count, clamping the current page into range
func (p *Pagination) SetTotalPages(total int) {
	if total < 1 {
		total = 1
	}
	p.opts.TotalPages = total
	if p.opts.CurrentPage > total {
		p.opts.CurrentPage = total
	}
	p.rebuild()
	p.Refresh()
}

func (p *Pagination) maxVisible() int {
	if p.opts.MaxVisible > 0 {
		return p.opts.MaxVisible
	}
	return p.profile.MaxVisiblePages
}

// rebuild recreates the marker row. Pagination keeps its own state in range,
// so an error from ComputeWindow is a programming bug: log it and render an
// empty row rather than stale controls.
func (p *Pagination) rebuild() {
	markers, err := pagenav.ComputeWindow(p.opts.CurrentPage, p.opts.TotalPages, p.maxVisible())
	if err != nil {
		log.Printf("pagination: %v", err)
		p.row.Objects = nil
		p.row.Refresh()
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(markers))
	for _, m := range markers {
		if m.Ellipsis {
			gap := widget.NewLabel(EllipsisText)
			objects = append(objects, gap)
			continue
		}

		page := m.Page
		btn := widget.NewButton(strconv.Itoa(page), func() {
			p.SetPage(page)
		})
		if page == p.opts.CurrentPage {
			btn.Importance = widget.HighImportance
			btn.Disable()
		}
		objects = append(objects, btn)
	}

	p.row.Objects = objects
	p.row.Refresh()
}

// CreateRenderer creates the renderer for the pagination control
func (p *Pagination) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(p.row))
}
