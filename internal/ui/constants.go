package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 550
)

// Dialog sizing
const (
	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 300
)

// Text fragments
const (
	LabelFieldSeparator = ": "
)
