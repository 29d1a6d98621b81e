package ui

import (
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/user-form/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onChanged    func()

	// UI components
	recordsFileEntry *widget.Entry
	languageSelect   *widget.Select
	resetCheck       *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog; onChanged runs
// after the settings were saved.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onChanged func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onChanged = onChanged
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
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
	sd.recordsFileEntry = widget.NewEntry()
	sd.recordsFileEntry.SetPlaceHolder(config.DefaultRecordsFile)

	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	recordsFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.recordsFileEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	sd.resetCheck = widget.NewCheck(sd.localization.GetText(KeyResetAfterSave), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyRecordsFile)+":"),
		recordsFileRow,
		sd.resetCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.recordsFileEntry.SetText(sd.settings.GetRecordsFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.resetCheck.SetChecked(sd.settings.GetResetAfterSave())
}

// onBrowseDirectory keeps the file name and moves it into the chosen folder
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		name := filepath.Base(sd.recordsFileEntry.Text)
		if name == "." || name == string(filepath.Separator) || name == "" {
			name = config.DefaultRecordsFile
		}
		sd.recordsFileEntry.SetText(filepath.Join(uri.Path(), name))
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetRecordsFile(sd.recordsFileEntry.Text)
	sd.settings.SetResetAfterSave(sd.resetCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onChanged != nil {
		sd.onChanged()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
