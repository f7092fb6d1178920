package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vibbs/hubdeck/internal/config"
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// Fired after a successful save so the shell can re-apply theme/layout
	onApplied func()

	// UI components
	themeSelect    *widget.Select
	languageSelect *widget.Select
	pageSizeEntry  *widget.Entry
	layoutSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onApplied func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onApplied:    onApplied,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Theme variant selection
	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Page size
	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder(strconv.Itoa(config.DefaultPageSize))

	// Layout profile selection
	layoutOptions := []string{}
	for _, mode := range sd.settings.GetLayoutProfileOptions() {
		layoutOptions = append(layoutOptions, string(mode))
	}
	sd.layoutSelect = widget.NewSelect(layoutOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyPageSize)+":"),
		sd.pageSizeEntry,

		widget.NewLabel(sd.localization.GetText(KeyLayoutProfile)+":"),
		sd.layoutSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetPageSize()))
	sd.layoutSelect.SetSelected(string(sd.settings.GetLayoutProfile()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if sd.pageSizeEntry.Text != "" {
		if size, err := strconv.Atoi(sd.pageSizeEntry.Text); err == nil {
			sd.settings.SetPageSize(size)
		}
	}
	if sd.layoutSelect.Selected != "" {
		sd.settings.SetLayoutProfile(config.LayoutProfileMode(sd.layoutSelect.Selected))
	}

	if sd.onApplied != nil {
		sd.onApplied()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
