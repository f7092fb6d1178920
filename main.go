package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vibbs/hubdeck/internal/config"
	"github.com/vibbs/hubdeck/internal/model"
	"github.com/vibbs/hubdeck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vibbs.hubdeck"
	AppName = "HubDeck"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	fmt.Printf("HubDeck v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and apply the configured theme
	settings := config.NewSettings(myApp)
	ui.ApplyThemeVariant(myApp, settings.GetThemeVariant())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The layout profile is decided once here, not at widget call sites
	profile := ui.ProfileForMode(settings.GetLayoutProfile())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, seedHubs(), settings, profile)

	// Show and run
	myWindow.ShowAndRun()
}

// seedHubs builds the demo data shown on first launch
func seedHubs() []*model.Hub {
	platform := model.NewHub("Platform", "Infrastructure and shared services")
	for _, name := range []string{
		"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown",
		"Carol White", "David Lee", "Erin Clark", "Frank Hall",
		"Grace Young", "Henry King", "Iris Wright", "Jack Scott",
	} {
		platform.AddMember(model.NewMember(name))
	}
	addEntity(platform, "Rollout plan", "Document", model.StatusActive, platform.Members[0])
	addEntity(platform, "Migrate build agents", "Task", model.StatusReview, platform.Members[1])
	addEntity(platform, "Q3 retrospective", "Document", model.StatusDone, platform.Members[2])
	addEntity(platform, "Decommission legacy queue", "Task", model.StatusArchived, nil)

	design := model.NewHub("Design", "Product design and research")
	for _, name := range []string{"Karen Green", "Liam Adams", "Mona Baker"} {
		design.AddMember(model.NewMember(name))
	}
	addEntity(design, "Onboarding flow", "Document", model.StatusDraft, design.Members[0])
	addEntity(design, "Icon refresh", "Task", model.StatusDone, design.Members[2])

	return []*model.Hub{platform, design}
}

func addEntity(hub *model.Hub, title, kind string, status model.EntityStatus, owner *model.Member) {
	entity := model.NewEntity(hub.ID, title)
	entity.Kind = kind
	entity.Status = status
	entity.Owner = owner
	entity.Summary = fmt.Sprintf("%s in %s", kind, hub.Name)
	hub.AddEntity(entity)
}
