package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vibbs/hubdeck/internal/config"
	"github.com/vibbs/hubdeck/internal/model"
	"github.com/vibbs/hubdeck/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.vibbs.hubdeck")
	myWindow := myApp.NewWindow("HubDeck")
	myWindow.Resize(fyne.NewSize(900, 640))

	settings := config.NewSettings(myApp)
	ui.ApplyThemeVariant(myApp, settings.GetThemeVariant())
	profile := ui.ProfileForMode(settings.GetLayoutProfile())

	// Create and setup UI with an empty workspace
	ui.NewRootUI(myWindow, myApp, []*model.Hub{}, settings, profile)

	// Show and run
	myWindow.ShowAndRun()
}
