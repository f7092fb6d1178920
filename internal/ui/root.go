package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/config"
	"github.com/vibbs/hubdeck/internal/model"
)

// Drawer tab identifiers
const (
	TabOverview = "overview"
	TabActivity = "activity"
	TabDetails  = "details"
)

// EntityFilter enumerates visible subsets of entities in the UI
type EntityFilter int

const (
	FilterAll EntityFilter = iota
	FilterOpen
	FilterDone
)

// RootUI represents the main dashboard structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	profile      *Profile
	settings     *config.Settings
	localization *Localization

	// Data
	hubs             []*model.Hub
	selectedHub      *model.Hub
	currentFilter    EntityFilter
	filteredEntities []*model.Entity
	pagedMembers     []*model.Member
	memberPage       int

	// UI components
	hubGrid        *fyne.Container
	memberList     *widget.List
	entityList     *widget.List
	pagination     *Pagination
	drawer         *EntityDrawer
	drawerSlot     *fyne.Container
	filterSelect   *widget.Select
	settingsDialog *SettingsDialog
}

// NewRootUI creates the main dashboard and installs it as window content
func NewRootUI(window fyne.Window, app fyne.App, hubs []*model.Hub, settings *config.Settings, profile *Profile) *RootUI {
	r := &RootUI{
		window:       window,
		app:          app,
		profile:      profile,
		settings:     settings,
		localization: NewLocalization(),
		hubs:         hubs,
		memberPage:   1,
	}
	r.localization.SetLanguage(settings.GetLanguage())

	r.createUI()

	if len(hubs) > 0 {
		r.selectHub(hubs[0])
	}
	return r
}

// createUI creates the user interface for the dashboard
func (r *RootUI) createUI() {
	r.createDrawer()
	r.createMemberList()
	r.createEntityList()
	r.createHubGrid()

	r.pagination = NewPagination(PaginationOptions{
		TotalPages:  1,
		CurrentPage: 1,
		OnSelect: func(page int) {
			r.memberPage = page
			r.updatePagedMembers()
		},
	}, r.profile)

	r.settingsDialog = NewSettingsDialog(r.settings, r.window, r.localization, r.applySettings)

	titleLabel := widget.NewLabel(r.localization.GetText(KeyAppTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	settingsBtn := widget.NewButtonWithIcon(r.localization.GetText(KeySettings), theme.SettingsIcon(), func() {
		r.settingsDialog.Show()
	})
	toolbar := container.NewBorder(nil, nil, titleLabel, settingsBtn)

	membersBox := container.NewBorder(
		widget.NewLabel(r.localization.GetText(KeyMembers)),
		r.pagination,
		nil, nil,
		r.memberList,
	)
	entitiesBox := container.NewBorder(
		container.NewVBox(widget.NewLabel(r.localization.GetText(KeyEntities)), r.filterSelect),
		nil, nil, nil,
		r.entityList,
	)

	detail := container.NewHSplit(membersBox, entitiesBox)
	main := container.NewVSplit(container.NewVScroll(r.hubGrid), detail)

	r.drawerSlot = container.NewHBox()

	root := container.NewBorder(toolbar, nil, nil, r.drawerSlot, main)
	r.window.SetContent(root)
}

func (r *RootUI) createHubGrid() {
	cardSize := fyne.NewSize(r.profile.CardMinWidth, r.profile.CardMinHeight)
	r.hubGrid = container.NewGridWrap(cardSize)
	for _, hub := range r.hubs {
		card := NewHubCard(HubCardOptions{
			Hub:      hub,
			OnTapped: r.selectHub,
		}, r.profile, r.localization)
		r.hubGrid.Add(card)
	}
}

func (r *RootUI) createMemberList() {
	r.memberList = widget.NewList(
		func() int {
			return len(r.pagedMembers)
		},
		func() fyne.CanvasObject {
			avatar := NewAvatar(AvatarOptions{Size: AvatarSizeSmall}, r.profile)
			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, avatar, nil, name)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(r.pagedMembers) {
				return
			}
			member := r.pagedMembers[id]
			row := item.(*fyne.Container)
			for _, obj := range row.Objects {
				switch o := obj.(type) {
				case *Avatar:
					o.SetIdentity(member.Initials, member.DisplayName)
				case *widget.Label:
					o.SetText(member.GetDisplayTitle())
				}
			}
		},
	)
}

func (r *RootUI) createEntityList() {
	r.entityList = widget.NewList(
		func() int {
			return len(r.filteredEntities)
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			status := widget.NewLabel("")
			return container.NewBorder(nil, nil, nil, status, title)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(r.filteredEntities) {
				return
			}
			entity := r.filteredEntities[id]
			row := item.(*fyne.Container)
			var labels []*widget.Label
			for _, obj := range row.Objects {
				if l, ok := obj.(*widget.Label); ok {
					labels = append(labels, l)
				}
			}
			// Border places the center object first, trailing objects after
			if len(labels) == 2 {
				labels[0].SetText(entity.GetDisplayTitle())
				labels[1].SetText(entity.Status.String())
			}
		},
	)
	r.entityList.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(r.filteredEntities) {
			r.openDrawer(r.filteredEntities[id])
		}
		r.entityList.UnselectAll()
	}

	r.filterSelect = widget.NewSelect([]string{
		r.localization.GetText(KeyAllEntities),
		r.localization.GetText(KeyOpenEntities),
		r.localization.GetText(KeyDoneEntities),
	}, func(string) {
		r.currentFilter = EntityFilter(r.filterSelect.SelectedIndex())
		r.refreshEntities()
	})
	r.filterSelect.SetSelectedIndex(int(FilterAll))
}

func (r *RootUI) createDrawer() {
	router := NewMemoryTabRouter(
		TabSpec{ID: TabOverview, Title: r.localization.GetText(KeyOverviewTab)},
		TabSpec{ID: TabActivity, Title: r.localization.GetText(KeyActivityTab)},
		TabSpec{ID: TabDetails, Title: r.localization.GetText(KeyDetailsTab)},
	)

	r.drawer = NewEntityDrawer(EntityDrawerOptions{
		Router: router,
		Content: map[string]TabContentFunc{
			TabOverview: r.buildOverviewTab,
			TabActivity: r.buildActivityTab,
			TabDetails:  r.buildDetailsTab,
		},
		OnClose: r.closeDrawer,
	}, r.profile, r.localization)
}

func (r *RootUI) buildOverviewTab(entity *model.Entity) fyne.CanvasObject {
	if entity == nil {
		return widget.NewLabel(r.localization.GetText(KeyNoSelection))
	}

	owner := entity.OwnerName()
	if owner == "" {
		owner = r.localization.GetText(KeyNoOwner)
	}
	summary := widget.NewLabel(entity.Summary)
	summary.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		widget.NewLabel(entity.Kind+MiddleDotSeparator+entity.Status.String()),
		container.NewHBox(
			NewAvatar(AvatarOptions{Name: entity.OwnerName(), Size: AvatarSizeSmall}, r.profile),
			widget.NewLabel(owner),
		),
		widget.NewSeparator(),
		summary,
	)
}

func (r *RootUI) buildActivityTab(entity *model.Entity) fyne.CanvasObject {
	if entity == nil {
		return widget.NewLabel(r.localization.GetText(KeyNoSelection))
	}
	const layout = "2006-01-02 15:04"
	return container.NewVBox(
		widget.NewLabel("Created"+MiddleDotSeparator+entity.CreatedAt.Format(layout)),
		widget.NewLabel("Updated"+MiddleDotSeparator+entity.UpdatedAt.Format(layout)),
	)
}

func (r *RootUI) buildDetailsTab(entity *model.Entity) fyne.CanvasObject {
	if entity == nil {
		return widget.NewLabel(r.localization.GetText(KeyNoSelection))
	}
	idLabel := widget.NewLabel("ID" + MiddleDotSeparator + entity.ID)
	idLabel.Truncation = fyne.TextTruncateEllipsis
	hubLabel := widget.NewLabel("Hub" + MiddleDotSeparator + entity.HubID)
	hubLabel.Truncation = fyne.TextTruncateEllipsis
	return container.NewVBox(idLabel, hubLabel)
}

// selectHub binds the detail panes to the given hub
func (r *RootUI) selectHub(hub *model.Hub) {
	r.selectedHub = hub
	r.memberPage = 1
	r.pagination.SetTotalPages(r.memberPageCount())
	r.pagination.SetPage(1)
	r.updatePagedMembers()
	r.refreshEntities()
}

// memberPageCount returns how many member pages the selected hub spans
func (r *RootUI) memberPageCount() int {
	if r.selectedHub == nil {
		return 1
	}
	size := r.settings.GetPageSize()
	count := (len(r.selectedHub.Members) + size - 1) / size
	if count < 1 {
		count = 1
	}
	return count
}

func (r *RootUI) updatePagedMembers() {
	if r.selectedHub == nil {
		r.pagedMembers = nil
		r.memberList.Refresh()
		return
	}

	size := r.settings.GetPageSize()
	start := (r.memberPage - 1) * size
	end := start + size
	members := r.selectedHub.Members
	if start > len(members) {
		start = len(members)
	}
	if end > len(members) {
		end = len(members)
	}
	r.pagedMembers = members[start:end]
	r.memberList.Refresh()
}

func (r *RootUI) refreshEntities() {
	r.filteredEntities = nil
	if r.selectedHub != nil {
		for _, entity := range r.selectedHub.Entities {
			switch r.currentFilter {
			case FilterOpen:
				if !entity.Status.IsOpen() {
					continue
				}
			case FilterDone:
				if !entity.Status.IsClosed() {
					continue
				}
			}
			r.filteredEntities = append(r.filteredEntities, entity)
		}
	}
	r.entityList.Refresh()
}

func (r *RootUI) openDrawer(entity *model.Entity) {
	r.drawer.ShowEntity(entity)
	if len(r.drawerSlot.Objects) == 0 {
		r.drawerSlot.Add(r.drawer)
		r.drawerSlot.Refresh()
	}
}

func (r *RootUI) closeDrawer() {
	r.drawerSlot.Objects = nil
	r.drawerSlot.Refresh()
}

// applySettings re-applies language, theme, and pagination after a save
func (r *RootUI) applySettings() {
	r.localization.SetLanguage(r.settings.GetLanguage())
	ApplyThemeVariant(r.app, r.settings.GetThemeVariant())

	if r.selectedHub != nil {
		r.selectHub(r.selectedHub)
	}
}

// ApplyThemeVariant installs the dashboard theme for the configured variant
func ApplyThemeVariant(app fyne.App, variant config.ThemeVariant) {
	switch variant {
	case config.VariantLight:
		app.Settings().SetTheme(NewDashboardThemeWithVariant(theme.VariantLight))
	case config.VariantDark:
		app.Settings().SetTheme(NewDashboardThemeWithVariant(theme.VariantDark))
	default:
		app.Settings().SetTheme(NewDashboardTheme())
	}
}

// HubSummary returns a short line describing a hub for logs and tooltips
func HubSummary(hub *model.Hub) string {
	if hub == nil {
		return DashPlaceholder
	}
	return fmt.Sprintf("%s%s%d %s%s%s", hub.Name, MiddleDotSeparator,
		len(hub.Members), "members", MiddleDotSeparator,
		fmt.Sprintf(ProgressFormat, hub.ProgressPercent()))
}
