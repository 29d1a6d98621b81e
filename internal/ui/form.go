package ui

import (
	"errors"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/user-form/internal/model"
)

var errDateFormat = errors.New("use YYYY-MM-DD")

// RecordForm holds the draft typed by the user. It owns no persisted state;
// Draft converts the current widget values into a record.
type RecordForm struct {
	localization *Localization

	nameEntry     *widget.Entry
	idNumberEntry *widget.Entry
	provinceEntry *widget.Entry
	dobEntry      *widget.Entry
	genderGroup   *widget.RadioGroup

	nameLabel     *widget.Label
	idNumberLabel *widget.Label
	genderLabel   *widget.Label
	provinceLabel *widget.Label
	dobLabel      *widget.Label

	content *fyne.Container
}

// NewRecordForm creates the input column of the window
func NewRecordForm(localization *Localization) *RecordForm {
	f := &RecordForm{localization: localization}

	f.nameEntry = widget.NewEntry()
	f.idNumberEntry = widget.NewEntry()
	f.provinceEntry = widget.NewEntry()
	f.dobEntry = widget.NewEntry()
	f.dobEntry.Validator = validateDate

	f.genderGroup = widget.NewRadioGroup(model.GenderOptions(), nil)
	f.genderGroup.Horizontal = true

	f.nameLabel = widget.NewLabel("")
	f.idNumberLabel = widget.NewLabel("")
	f.genderLabel = widget.NewLabel("")
	f.provinceLabel = widget.NewLabel("")
	f.dobLabel = widget.NewLabel("")

	f.RefreshTexts()

	f.content = container.NewVBox(
		f.nameLabel, f.nameEntry,
		f.idNumberLabel, f.idNumberEntry,
		f.genderLabel, f.genderGroup,
		f.provinceLabel, f.provinceEntry,
		f.dobLabel, f.dobEntry,
		layout.NewSpacer(),
	)
	return f
}

// Container returns the form content
func (f *RecordForm) Container() fyne.CanvasObject {
	return container.NewPadded(f.content)
}

// RefreshTexts applies the current language to labels and placeholders
func (f *RecordForm) RefreshTexts() {
	f.nameLabel.SetText(f.localization.GetText(KeyFullName))
	f.idNumberLabel.SetText(f.localization.GetText(KeyIDNumber))
	f.genderLabel.SetText(f.localization.GetText(KeyGender))
	f.provinceLabel.SetText(f.localization.GetText(KeyProvince))
	f.dobLabel.SetText(f.localization.GetText(KeyDateOfBirth))

	f.nameEntry.SetPlaceHolder(f.localization.GetText(KeyEnterFullName))
	f.idNumberEntry.SetPlaceHolder(f.localization.GetText(KeyEnterIDNumber))
	f.provinceEntry.SetPlaceHolder(f.localization.GetText(KeyEnterProvince))
	f.dobEntry.SetPlaceHolder(f.localization.GetText(KeyEnterDateOfBirth))
}

// Draft returns the record currently typed into the form. Text values are
// taken as-is; only the date is trimmed.
func (f *RecordForm) Draft() model.Record {
	return model.Record{
		FullName:    f.nameEntry.Text,
		IDNumber:    f.idNumberEntry.Text,
		Gender:      f.genderGroup.Selected,
		Province:    f.provinceEntry.Text,
		DateOfBirth: strings.TrimSpace(f.dobEntry.Text),
	}
}

// SetDraft fills the form from a record
func (f *RecordForm) SetDraft(r model.Record) {
	f.nameEntry.SetText(r.FullName)
	f.idNumberEntry.SetText(r.IDNumber)
	f.provinceEntry.SetText(r.Province)
	f.dobEntry.SetText(r.DateOfBirth)
	f.genderGroup.SetSelected(r.Gender)
}

// Reset clears every input
func (f *RecordForm) Reset() {
	f.SetDraft(model.Record{})
}

// FocusField moves keyboard focus to the entry holding the given field
func (f *RecordForm) FocusField(canvas fyne.Canvas, field model.Field) {
	if canvas == nil {
		return
	}
	var target fyne.Focusable
	switch field {
	case model.FieldFullName:
		target = f.nameEntry
	case model.FieldIDNumber:
		target = f.idNumberEntry
	case model.FieldProvince:
		target = f.provinceEntry
	case model.FieldDateOfBirth:
		target = f.dobEntry
	default:
		return
	}
	canvas.Focus(target)
}

// validateDate accepts an empty value; a missing date is reported on save
func validateDate(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, input); err != nil {
		return errDateFormat
	}
	return nil
}
