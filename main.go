package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/user-form/internal/config"
	"github.com/ytget/user-form/internal/platform"
	"github.com/ytget/user-form/internal/store"
	"github.com/ytget/user-form/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.user-form"
	AppName = "User Application Form"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	recordsPath, err := platform.ResolveRecordsPath("", settings.GetRecordsFile())
	if err != nil {
		fmt.Printf("invalid records file setting, using %s: %v\n", store.DefaultFileName, err)
		recordsPath = store.DefaultFileName
	}
	recordStore := store.NewStore(recordsPath)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, recordStore)

	// Show and run
	myWindow.ShowAndRun()
}
