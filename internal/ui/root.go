package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/user-form/internal/config"
	"github.com/ytget/user-form/internal/model"
	"github.com/ytget/user-form/internal/platform"
	"github.com/ytget/user-form/internal/store"
)

// RecorderFactory opens a record store for a resolved file path
type RecorderFactory func(path string) store.Recorder

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	form         *RecordForm
	saveBtn      *widget.Button
	closeBtn     *widget.Button
	recorder     store.Recorder
	openRecorder RecorderFactory
	settings     *config.Settings
	localization *Localization

	// Correlates log lines of one window session
	sessionID string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, recorder store.Recorder) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		recorder:     recorder,
		settings:     settings,
		localization: localization,
		sessionID:    uuid.NewString(),
		openRecorder: func(path string) store.Recorder {
			return store.NewStore(path)
		},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.logf("RootUI initialized, records file: %s", recorder.Path())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.form = NewRecordForm(ui.localization)
	ui.form.dobEntry.OnSubmitted = func(string) {
		ui.onSaveClick()
	}

	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySaveRecord), ui.onSaveClick)
	ui.saveBtn.Importance = widget.HighImportance

	ui.closeBtn = widget.NewButton(ui.localization.GetText(KeyClose), ui.onCloseClick)

	buttons := container.NewVBox(
		layout.NewSpacer(),
		ui.saveBtn,
		ui.closeBtn,
		layout.NewSpacer(),
	)

	content := container.NewBorder(
		nil,                          // top
		nil,                          // bottom
		nil,                          // left
		container.NewPadded(buttons), // right
		ui.form.Container(),          // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenRecords), ui.onOpenRecords)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealRecords), ui.onRevealRecords)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			openItem,
			revealItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.form.RefreshTexts()
	ui.saveBtn.SetText(ui.localization.GetText(KeySaveRecord))
	ui.closeBtn.SetText(ui.localization.GetText(KeyClose))
}

// onSaveClick validates the draft and appends it to the records file.
// A failed write is only logged and the form keeps its values.
func (ui *RootUI) onSaveClick() {
	record := ui.form.Draft()

	err := ui.recorder.Save(record)
	var missing *model.MissingFieldError
	switch {
	case err == nil:
		ui.logf("Record saved to %s", ui.recorder.Path())
		dialog.ShowInformation(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyRecordSaved), ui.window)
		if ui.settings.GetResetAfterSave() {
			ui.form.Reset()
		}
	case errors.As(err, &missing):
		ui.logf("Save rejected: %v", err)
		message := ui.localization.GetText(KeyAllFieldsMandatory) + "\n" +
			ui.localization.GetText(KeyMissingField) + LabelFieldSeparator + ui.fieldLabel(missing.Field)
		dialog.ShowInformation(ui.localization.GetText(KeyError), message, ui.window)
		ui.form.FocusField(ui.window.Canvas(), missing.Field)
	case errors.Is(err, model.ErrInvalidDate):
		ui.logf("Save rejected: %v", err)
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyInvalidDate), ui.window)
		ui.form.FocusField(ui.window.Canvas(), model.FieldDateOfBirth)
	default:
		ui.logf("Error saving record to %s: %v", ui.recorder.Path(), err)
	}
}

// fieldLabel returns the localized label of a record field
func (ui *RootUI) fieldLabel(field model.Field) string {
	switch field {
	case model.FieldFullName:
		return ui.localization.GetText(KeyFullName)
	case model.FieldIDNumber:
		return ui.localization.GetText(KeyIDNumber)
	case model.FieldGender:
		return ui.localization.GetText(KeyGender)
	case model.FieldProvince:
		return ui.localization.GetText(KeyProvince)
	case model.FieldDateOfBirth:
		return ui.localization.GetText(KeyDateOfBirth)
	default:
		return field.Label()
	}
}

// onCloseClick quits the application
func (ui *RootUI) onCloseClick() {
	ui.logf("Close requested")
	ui.app.Quit()
}

// onOpenRecords opens the records file with the default application
func (ui *RootUI) onOpenRecords() {
	path := ui.recorder.Path()
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.logf("Error opening records file %s: %v", path, err)
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningFile)+LabelFieldSeparator+err.Error(), ui.window)
	}
}

// onRevealRecords shows the records file in the system file manager
func (ui *RootUI) onRevealRecords() {
	path := ui.recorder.Path()
	if err := platform.OpenFileInManager(path); err != nil {
		ui.logf("Error revealing records file %s: %v", path, err)
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningFile)+LabelFieldSeparator+err.Error(), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsChanged)
}

// onSettingsChanged reopens the store when the records file moved and
// applies the selected language
func (ui *RootUI) onSettingsChanged() {
	path, err := platform.ResolveRecordsPath("", ui.settings.GetRecordsFile())
	if err != nil {
		ui.logf("Invalid records file setting: %v", err)
	} else if path != ui.recorder.Path() {
		ui.recorder = ui.openRecorder(path)
		ui.logf("Records file changed to %s", path)
	}

	ui.onLanguageChange(ui.settings.GetLanguage())
}

func (ui *RootUI) logf(format string, args ...any) {
	log.Printf("[session %s] "+format, append([]any{ui.sessionID}, args...)...)
}
