package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/model"
)

// TabContentFunc builds the drawer body for one tab and the current entity.
// The entity may be nil when nothing is selected.
type TabContentFunc func(entity *model.Entity) fyne.CanvasObject

// EntityDrawerOptions is the closed set of recognized options for an EntityDrawer
type EntityDrawerOptions struct {
	Router  TabRouter
	Content map[string]TabContentFunc // keyed by TabSpec.ID
	OnClose func()
}

// EntityDrawer is a side panel showing details for one entity, with a tab
// bar driven by the injected TabRouter
type EntityDrawer struct {
	widget.BaseWidget

	opts         EntityDrawerOptions
	profile      *Profile
	localization *Localization

	entity *model.Entity

	avatar     *Avatar
	titleLabel *widget.Label
	kindLabel  *widget.Label
	closeBtn   *widget.Button
	tabBar     *fyne.Container
	content    *fyne.Container
}

// NewEntityDrawer creates a new entity drawer bound to the given router
func NewEntityDrawer(opts EntityDrawerOptions, profile *Profile, localization *Localization) *EntityDrawer {
	d := &EntityDrawer{
		opts:         opts,
		profile:      profile,
		localization: localization,
	}
	d.ExtendBaseWidget(d)
	d.createUI()

	if opts.Router != nil {
		opts.Router.OnChange(func(string) {
			d.refreshTabs()
			d.refreshContent()
		})
	}
	return d
}

func (d *EntityDrawer) createUI() {
	d.avatar = NewAvatar(AvatarOptions{}, d.profile)
	d.titleLabel = widget.NewLabel(d.localization.GetText(KeyNoSelection))
	d.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	d.titleLabel.Truncation = fyne.TextTruncateEllipsis
	d.kindLabel = widget.NewLabel(DashPlaceholder)
	d.closeBtn = widget.NewButton(d.localization.GetText(KeyClose), func() {
		if d.opts.OnClose != nil {
			d.opts.OnClose()
		}
	})

	d.tabBar = container.NewHBox()
	d.content = container.NewStack()
	d.refreshTabs()
	d.refreshContent()
}

// ShowEntity binds the drawer to an entity and refreshes all parts
func (d *EntityDrawer) ShowEntity(entity *model.Entity) {
	d.entity = entity
	if entity != nil {
		d.avatar.SetIdentity("", entity.OwnerName())
		d.titleLabel.SetText(entity.GetDisplayTitle())
		kind := entity.Kind
		if kind == "" {
			kind = DashPlaceholder
		}
		d.kindLabel.SetText(kind + MiddleDotSeparator + entity.Status.String())
	} else {
		d.avatar.SetIdentity("", "")
		d.titleLabel.SetText(d.localization.GetText(KeyNoSelection))
		d.kindLabel.SetText(DashPlaceholder)
	}
	d.refreshContent()
	d.Refresh()
}

// Entity returns the currently shown entity, nil when none
func (d *EntityDrawer) Entity() *model.Entity {
	return d.entity
}

// SelectTab switches the router to the given tab
func (d *EntityDrawer) SelectTab(id string) {
	if d.opts.Router == nil {
		return
	}
	if err := d.opts.Router.Select(id); err != nil {
		log.Printf("entity drawer: %v", err)
	}
}

func (d *EntityDrawer) refreshTabs() {
	if d.opts.Router == nil {
		d.tabBar.Objects = nil
		d.tabBar.Refresh()
		return
	}

	current := d.opts.Router.Current()
	objects := make([]fyne.CanvasObject, 0, len(d.opts.Router.Tabs()))
	for _, tab := range d.opts.Router.Tabs() {
		id := tab.ID
		btn := widget.NewButton(tab.Title, func() {
			d.SelectTab(id)
		})
		if id == current {
			btn.Importance = widget.HighImportance
			btn.Disable()
		}
		objects = append(objects, btn)
	}
	d.tabBar.Objects = objects
	d.tabBar.Refresh()
}

func (d *EntityDrawer) refreshContent() {
	var body fyne.CanvasObject
	if d.opts.Router != nil {
		if build, ok := d.opts.Content[d.opts.Router.Current()]; ok {
			body = build(d.entity)
		}
	}
	if body == nil {
		body = widget.NewLabel(d.localization.GetText(KeyNoSelection))
	}
	d.content.Objects = []fyne.CanvasObject{body}
	d.content.Refresh()
}

// MinSize reserves the profile's drawer width
func (d *EntityDrawer) MinSize() fyne.Size {
	min := d.BaseWidget.MinSize()
	if min.Width < d.profile.DrawerWidth {
		min.Width = d.profile.DrawerWidth
	}
	return min
}

// CreateRenderer creates the renderer for the drawer
func (d *EntityDrawer) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, d.avatar, d.closeBtn,
		container.NewVBox(d.titleLabel, d.kindLabel))

	layout := container.NewBorder(
		container.NewVBox(header, d.tabBar, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(d.content),
	)
	return widget.NewSimpleRenderer(layout)
}
