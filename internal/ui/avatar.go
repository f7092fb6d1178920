package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/identity"
)

// Luminance threshold above which dark text reads better than light text
const contrastLuminanceThreshold = 150

// AvatarOptions is the closed set of recognized options for an Avatar
type AvatarOptions struct {
	Name     string        // display name used for initials and color
	Initials string        // explicit initials override, wins over Name
	Image    fyne.Resource // optional picture, takes precedence over initials
	Size     float32       // diameter, 0 uses the profile's avatar size
}

// Avatar is a circular widget showing a picture when available, otherwise
// initials on a deterministically colored background
type Avatar struct {
	widget.BaseWidget

	opts    AvatarOptions
	profile *Profile
	id      identity.Identity
}

// NewAvatar creates a new avatar widget
func NewAvatar(opts AvatarOptions, profile *Profile) *Avatar {
	a := &Avatar{opts: opts, profile: profile}
	a.id = identity.Derive(opts.Initials, opts.Name, AvatarPalette())
	a.ExtendBaseWidget(a)
	return a
}

// SetIdentity updates the name and explicit initials and refreshes the widget
func (a *Avatar) SetIdentity(explicitInitials, name string) {
	a.opts.Initials = explicitInitials
	a.opts.Name = name
	a.id = identity.Derive(explicitInitials, name, AvatarPalette())
	a.Refresh()
}

// InitialsText returns the text rendered when no image is set
func (a *Avatar) InitialsText() string {
	if a.id.Unknown {
		return UnknownGlyph
	}
	return a.id.Initials
}

// BackgroundColor returns the palette color derived for the current identity
func (a *Avatar) BackgroundColor() color.Color {
	return a.id.Color
}

func (a *Avatar) diameter() float32 {
	if a.opts.Size > 0 {
		return a.opts.Size
	}
	return a.profile.AvatarSize
}

// MinSize returns the avatar's diameter in both dimensions
func (a *Avatar) MinSize() fyne.Size {
	d := a.diameter()
	return fyne.NewSize(d, d)
}

// CreateRenderer creates the renderer for the avatar
func (a *Avatar) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(a.id.Color)
	text := canvas.NewText(a.InitialsText(), contrastTextColor(a.id.Color))
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = a.diameter() * AvatarTextRatio

	r := &avatarRenderer{avatar: a, circle: circle, text: text}
	if a.opts.Image != nil {
		r.image = canvas.NewImageFromResource(a.opts.Image)
		r.image.FillMode = canvas.ImageFillContain
	}
	return r
}

type avatarRenderer struct {
	avatar *Avatar
	circle *canvas.Circle
	text   *canvas.Text
	image  *canvas.Image
}

func (r *avatarRenderer) MinSize() fyne.Size {
	return r.avatar.MinSize()
}

func (r *avatarRenderer) Layout(size fyne.Size) {
	r.circle.Resize(size)
	r.circle.Move(fyne.NewPos(0, 0))

	if r.image != nil {
		r.image.Resize(size)
		r.image.Move(fyne.NewPos(0, 0))
		return
	}

	textMin := r.text.MinSize()
	r.text.Resize(textMin)
	r.text.Move(fyne.NewPos((size.Width-textMin.Width)/2, (size.Height-textMin.Height)/2))
}

func (r *avatarRenderer) Refresh() {
	r.circle.FillColor = r.avatar.id.Color
	r.text.Text = r.avatar.InitialsText()
	r.text.Color = contrastTextColor(r.avatar.id.Color)
	r.text.TextSize = r.avatar.diameter() * AvatarTextRatio
	r.circle.Refresh()
	r.text.Refresh()
	if r.image != nil {
		r.image.Refresh()
	}
	r.Layout(r.avatar.Size())
}

func (r *avatarRenderer) Objects() []fyne.CanvasObject {
	if r.image != nil {
		return []fyne.CanvasObject{r.circle, r.image}
	}
	return []fyne.CanvasObject{r.circle, r.text}
}

func (r *avatarRenderer) Destroy() {}

// contrastTextColor returns white or near-black depending on the perceived
// luminance of the background (sRGB coefficients)
func contrastTextColor(background color.Color) color.Color {
	if background == nil {
		return color.White
	}
	r, g, b, _ := background.RGBA()
	luminance := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	if luminance > contrastLuminanceThreshold {
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}
	return color.White
}
