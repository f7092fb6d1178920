package ui

import (
	"strconv"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/pagenav"
)

// rowTexts returns the rendered marker texts of the pagination row
func rowTexts(p *Pagination) []string {
	var texts []string
	for _, obj := range p.row.Objects {
		switch o := obj.(type) {
		case *widget.Button:
			texts = append(texts, o.Text)
		case *widget.Label:
			texts = append(texts, o.Text)
		}
	}
	return texts
}

func TestPagination_RendersComputedWindow(t *testing.T) {
	test.NewApp()
	p := NewPagination(PaginationOptions{TotalPages: 10, CurrentPage: 5, MaxVisible: 5}, DesktopProfile())

	markers, err := pagenav.ComputeWindow(5, 10, 5)
	if err != nil {
		t.Fatalf("ComputeWindow returned error: %v", err)
	}

	texts := rowTexts(p)
	if len(texts) != len(markers) {
		t.Fatalf("Rendered %d markers, expected %d", len(texts), len(markers))
	}
	for i, m := range markers {
		if texts[i] != m.String() {
			t.Errorf("Marker %d rendered as %q, expected %q", i, texts[i], m.String())
		}
	}
}

func TestPagination_EllipsisNotInteractive(t *testing.T) {
	test.NewApp()
	p := NewPagination(PaginationOptions{TotalPages: 10, CurrentPage: 5, MaxVisible: 5}, DesktopProfile())

	for _, obj := range p.row.Objects {
		if label, ok := obj.(*widget.Label); ok {
			if label.Text != EllipsisText {
				t.Errorf("Non-button marker should be an ellipsis, got %q", label.Text)
			}
		}
	}
}

func TestPagination_CurrentPageDisabled(t *testing.T) {
	test.NewApp()
	p := NewPagination(PaginationOptions{TotalPages: 10, CurrentPage: 5, MaxVisible: 5}, DesktopProfile())

	for _, obj := range p.row.Objects {
		btn, ok := obj.(*widget.Button)
		if !ok {
			continue
		}
		if btn.Text == strconv.Itoa(p.CurrentPage()) {
			if !btn.Disabled() {
				t.Error("Current page button should be disabled")
			}
			if btn.Importance != widget.HighImportance {
				t.Error("Current page button should be highlighted")
			}
		} else if btn.Disabled() {
			t.Errorf("Page button %q should be tappable", btn.Text)
		}
	}
}

func TestPagination_SetPage(t *testing.T) {
	test.NewApp()
	var selected []int
	p := NewPagination(PaginationOptions{
		TotalPages:  10,
		CurrentPage: 1,
		MaxVisible:  5,
		OnSelect:    func(page int) { selected = append(selected, page) },
	}, DesktopProfile())

	p.SetPage(3)
	if p.CurrentPage() != 3 {
		t.Errorf("CurrentPage() = %d, expected 3", p.CurrentPage())
	}

	// Selecting the same page again must not re-fire the callback
	p.SetPage(3)

	// Out-of-range requests clamp instead of erroring
	p.SetPage(99)
	if p.CurrentPage() != 10 {
		t.Errorf("CurrentPage() = %d, expected clamp to 10", p.CurrentPage())
	}
	p.SetPage(-5)
	if p.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d, expected clamp to 1", p.CurrentPage())
	}

	expected := []int{3, 10, 1}
	if len(selected) != len(expected) {
		t.Fatalf("OnSelect fired %d times, expected %d", len(selected), len(expected))
	}
	for i := range expected {
		if selected[i] != expected[i] {
			t.Errorf("OnSelect call %d = %d, expected %d", i, selected[i], expected[i])
		}
	}
}

func TestPagination_TapButton(t *testing.T) {
	test.NewApp()
	var got int
	p := NewPagination(PaginationOptions{
		TotalPages:  10,
		CurrentPage: 1,
		MaxVisible:  5,
		OnSelect:    func(page int) { got = page },
	}, DesktopProfile())
	test.WidgetRenderer(p)

	for _, obj := range p.row.Objects {
		if btn, ok := obj.(*widget.Button); ok && btn.Text == "4" {
			test.Tap(btn)
			break
		}
	}
	if got != 4 {
		t.Errorf("Tapping page 4 reported %d", got)
	}
}

func TestPagination_SetTotalPages(t *testing.T) {
	test.NewApp()
	p := NewPagination(PaginationOptions{TotalPages: 10, CurrentPage: 8, MaxVisible: 5}, DesktopProfile())

	p.SetTotalPages(4)
	if p.TotalPages() != 4 {
		t.Errorf("TotalPages() = %d, expected 4", p.TotalPages())
	}
	if p.CurrentPage() != 4 {
		t.Errorf("CurrentPage() = %d, expected clamp to 4", p.CurrentPage())
	}
}

func TestPagination_ProfileDefaultWindow(t *testing.T) {
	test.NewApp()
	p := NewPagination(PaginationOptions{TotalPages: 10, CurrentPage: 1}, MobileProfile())
	if p.maxVisible() != MobileMaxVisiblePages {
		t.Errorf("maxVisible() = %d, expected mobile default %d", p.maxVisible(), MobileMaxVisiblePages)
	}
}
