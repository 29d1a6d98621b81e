package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func janeDoe() Record {
	return Record{
		FullName:    "Jane Doe",
		IDNumber:    "998877",
		Gender:      GenderFemale,
		Province:    "Gauteng",
		DateOfBirth: "1990-05-02",
	}
}

func TestRecord_Line(t *testing.T) {
	expected := "Jane Doe,998877,Female,Gauteng,1990-05-02"
	if result := janeDoe().Line(); result != expected {
		t.Errorf("Line() = %q, expected %q", result, expected)
	}
}

func TestRecord_LineRoundTrip(t *testing.T) {
	r := janeDoe()
	parts := strings.Split(r.Line(), Separator)
	if len(parts) != 5 {
		t.Fatalf("expected 5 parts, got %d", len(parts))
	}

	got := Record{FullName: parts[0], IDNumber: parts[1], Gender: parts[2], Province: parts[3], DateOfBirth: parts[4]}
	if got != r {
		t.Errorf("round trip = %+v, expected %+v", got, r)
	}
}

// Commas inside a value are written unescaped, so the line no longer splits
// back into five fields.
func TestRecord_LineEmbeddedCommaNotEscaped(t *testing.T) {
	r := janeDoe()
	r.FullName = "Doe, Jane"

	line := r.Line()
	if line != "Doe, Jane,998877,Female,Gauteng,1990-05-02" {
		t.Errorf("unexpected line %q", line)
	}
	if parts := strings.Split(line, Separator); len(parts) != 6 {
		t.Errorf("expected 6 parts for an embedded comma, got %d", len(parts))
	}
}

func TestRecord_ValidateMissingField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Record)
		expected Field
	}{
		{"empty name", func(r *Record) { r.FullName = "" }, FieldFullName},
		{"empty id", func(r *Record) { r.IDNumber = "" }, FieldIDNumber},
		{"empty province", func(r *Record) { r.Province = "" }, FieldProvince},
		{"empty date", func(r *Record) { r.DateOfBirth = "" }, FieldDateOfBirth},
		{"empty gender", func(r *Record) { r.Gender = "" }, FieldGender},
		{"gender reported after date", func(r *Record) { r.Gender = ""; r.DateOfBirth = "" }, FieldDateOfBirth},
		{"province before gender", func(r *Record) { r.Gender = ""; r.Province = "" }, FieldProvince},
		{"all empty", func(r *Record) { *r = Record{} }, FieldFullName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := janeDoe()
			tt.mutate(&r)

			err := r.Validate()
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}

			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *MissingFieldError, got %T", err)
			}
			if missing.Field != tt.expected {
				t.Errorf("missing field = %s, expected %s", missing.Field, tt.expected)
			}
		})
	}
}

func TestRecord_ValidateWhitespaceIsPresent(t *testing.T) {
	r := janeDoe()
	r.Province = " "
	if err := r.Validate(); err != nil {
		t.Errorf("expected whitespace province to pass, got %v", err)
	}
}

func TestRecord_ValidateDate(t *testing.T) {
	tests := []struct {
		dob   string
		valid bool
	}{
		{"1990-05-02", true},
		{"2000-02-29", true},
		{"1990-5-2", false},
		{"02/05/1990", false},
		{"1990-02-30", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		r := janeDoe()
		r.DateOfBirth = tt.dob
		err := r.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate() with dob %q returned %v", tt.dob, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Validate() with dob %q = %v, expected ErrInvalidDate", tt.dob, err)
		}
	}
}

func TestMissingFieldError_Message(t *testing.T) {
	err := &MissingFieldError{Field: FieldProvince}
	expected := "missing required field: province"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

func TestNewRecord(t *testing.T) {
	dob := time.Date(1990, time.May, 2, 0, 0, 0, 0, time.UTC)
	r := NewRecord("Jane Doe", "998877", GenderFemale, "Gauteng", dob)
	if r != janeDoe() {
		t.Errorf("NewRecord() = %+v, expected %+v", r, janeDoe())
	}

	blankDate := NewRecord("Jane Doe", "998877", GenderFemale, "Gauteng", time.Time{})
	if blankDate.DateOfBirth != "" {
		t.Errorf("expected empty date for zero time, got %q", blankDate.DateOfBirth)
	}
}

func TestRecord_IsBlank(t *testing.T) {
	if !(Record{}).IsBlank() {
		t.Error("zero Record should be blank")
	}
	if janeDoe().IsBlank() {
		t.Error("filled Record should not be blank")
	}
}
