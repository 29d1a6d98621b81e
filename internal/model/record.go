package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Separator joins the fields of a persisted line. Values are written as-is:
// a comma or newline inside a field is not escaped.
const Separator = ","

var (
	// ErrMissingField is matched by every *MissingFieldError
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDate is matched by every *InvalidDateError
	ErrInvalidDate = errors.New("invalid date of birth")
)

// MissingFieldError reports the first empty field of a record
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Is makes errors.Is(err, ErrMissingField) succeed
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidDateError reports a date of birth that is not YYYY-MM-DD
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %q: expected YYYY-MM-DD", ErrInvalidDate, e.Value)
}

// Is makes errors.Is(err, ErrInvalidDate) succeed
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// Record is one applicant's captured form data. It is passed by value.
type Record struct {
	FullName    string `json:"full_name" yaml:"full_name"`
	IDNumber    string `json:"id_number" yaml:"id_number"`
	Gender      string `json:"gender" yaml:"gender"`
	Province    string `json:"province" yaml:"province"`
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
}

// NewRecord builds a record; dateOfBirth is formatted with DateLayout,
// a zero time yields an empty date.
func NewRecord(fullName, idNumber, gender, province string, dateOfBirth time.Time) Record {
	dob := ""
	if !dateOfBirth.IsZero() {
		dob = dateOfBirth.Format(DateLayout)
	}
	return Record{
		FullName:    fullName,
		IDNumber:    idNumber,
		Gender:      gender,
		Province:    province,
		DateOfBirth: dob,
	}
}

// Value returns the value of the given field
func (r Record) Value(f Field) string {
	switch f {
	case FieldFullName:
		return r.FullName
	case FieldIDNumber:
		return r.IDNumber
	case FieldGender:
		return r.Gender
	case FieldProvince:
		return r.Province
	case FieldDateOfBirth:
		return r.DateOfBirth
	default:
		return ""
	}
}

// Validate checks that no field is empty, in ValidationOrder, and then that
// the date of birth parses. Whitespace-only values count as present.
func (r Record) Validate() error {
	for _, f := range ValidationOrder {
		if r.Value(f) == "" {
			return &MissingFieldError{Field: f}
		}
	}

	if _, err := time.Parse(DateLayout, r.DateOfBirth); err != nil {
		return &InvalidDateError{Value: r.DateOfBirth, Err: err}
	}
	return nil
}

// Fields returns the values in LineOrder
func (r Record) Fields() []string {
	values := make([]string, 0, len(LineOrder))
	for _, f := range LineOrder {
		values = append(values, r.Value(f))
	}
	return values
}

// Line returns the persisted form of the record without the trailing newline
func (r Record) Line() string {
	return strings.Join(r.Fields(), Separator)
}

// IsBlank reports whether every field is empty
func (r Record) IsBlank() bool {
	for _, f := range LineOrder {
		if r.Value(f) != "" {
			return false
		}
	}
	return true
}
