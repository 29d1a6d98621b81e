package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "user-form.png"
)

// LoadLogoResource loads the app icon from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
