package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/model"
)

// HubCardOptions is the closed set of recognized options for a HubCard
type HubCardOptions struct {
	Hub      *model.Hub
	OnTapped func(hub *model.Hub)
}

// HubCard is a tappable card summarizing one hub: name, description, a strip
// of member avatars with an overflow counter, and overall progress
type HubCard struct {
	widget.BaseWidget

	opts         HubCardOptions
	profile      *Profile
	localization *Localization

	titleLabel    *widget.Label
	descLabel     *widget.Label
	avatarStrip   *fyne.Container
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
}

// NewHubCard creates a new hub card widget
func NewHubCard(opts HubCardOptions, profile *Profile, localization *Localization) *HubCard {
	hc := &HubCard{
		opts:         opts,
		profile:      profile,
		localization: localization,
	}
	hc.ExtendBaseWidget(hc)
	hc.createUI()
	hc.updateFromHub()
	return hc
}

func (hc *HubCard) createUI() {
	hc.titleLabel = widget.NewLabel("")
	hc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	hc.descLabel = widget.NewLabel("")
	hc.descLabel.Truncation = fyne.TextTruncateEllipsis

	hc.avatarStrip = container.NewHBox()
	hc.progressBar = widget.NewProgressBar()
	hc.progressLabel = widget.NewLabel("")
}

// SetHub rebinds the card to another hub
func (hc *HubCard) SetHub(hub *model.Hub) {
	hc.opts.Hub = hub
	hc.updateFromHub()
	hc.Refresh()
}

// Hub returns the bound hub
func (hc *HubCard) Hub() *model.Hub {
	return hc.opts.Hub
}

// Tapped implements fyne.Tappable
func (hc *HubCard) Tapped(_ *fyne.PointEvent) {
	if hc.opts.OnTapped != nil && hc.opts.Hub != nil {
		hc.opts.OnTapped(hc.opts.Hub)
	}
}

func (hc *HubCard) updateFromHub() {
	hub := hc.opts.Hub
	if hub == nil {
		hc.titleLabel.SetText(DashPlaceholder)
		hc.descLabel.SetText("")
		hc.avatarStrip.Objects = nil
		hc.avatarStrip.Refresh()
		hc.progressBar.SetValue(0)
		hc.progressLabel.SetText("")
		return
	}

	hc.titleLabel.SetText(hub.Name)
	hc.descLabel.SetText(hub.Description)

	visible, overflow := splitAvatarStrip(len(hub.Members), MaxCardAvatars)
	objects := make([]fyne.CanvasObject, 0, visible+1)
	for _, member := range hub.Members[:visible] {
		avatar := NewAvatar(AvatarOptions{
			Name:     member.DisplayName,
			Initials: member.Initials,
			Size:     AvatarSizeSmall,
		}, hc.profile)
		objects = append(objects, avatar)
	}
	if overflow > 0 {
		objects = append(objects, widget.NewLabel(fmt.Sprintf(OverflowFormat, overflow)))
	}
	hc.avatarStrip.Objects = objects
	hc.avatarStrip.Refresh()

	hc.progressBar.SetValue(hub.Progress)
	hc.progressLabel.SetText(fmt.Sprintf(ProgressFormat, hub.ProgressPercent()))
}

// splitAvatarStrip decides how many avatars to show and how many to fold
// into the "+k" overflow label. When the count exceeds the cap by exactly
// one, showing the avatar takes the same space as "+1", so it is shown.
func splitAvatarStrip(memberCount, maxAvatars int) (visible, overflow int) {
	if maxAvatars < 1 {
		return 0, memberCount
	}
	if memberCount <= maxAvatars+1 {
		return memberCount, 0
	}
	return maxAvatars, memberCount - maxAvatars
}

// MinSize reserves the profile's card dimensions
func (hc *HubCard) MinSize() fyne.Size {
	min := hc.BaseWidget.MinSize()
	if min.Width < hc.profile.CardMinWidth {
		min.Width = hc.profile.CardMinWidth
	}
	if min.Height < hc.profile.CardMinHeight {
		min.Height = hc.profile.CardMinHeight
	}
	return min
}

// CreateRenderer creates the renderer for the hub card
func (hc *HubCard) CreateRenderer() fyne.WidgetRenderer {
	progressRow := container.NewBorder(nil, nil, nil, hc.progressLabel, hc.progressBar)
	body := container.NewVBox(
		hc.titleLabel,
		hc.descLabel,
		hc.avatarStrip,
		progressRow,
	)
	return widget.NewSimpleRenderer(container.NewPadded(body))
}
