package model

// Field identifies one of the five record fields
type Field string

const (
	// FieldFullName is the applicant's full name
	FieldFullName Field = "fullName"

	// FieldIDNumber is the applicant's identity number
	FieldIDNumber Field = "idNumber"

	// FieldGender is the selected gender option
	FieldGender Field = "gender"

	// FieldProvince is the applicant's home province
	FieldProvince Field = "province"

	// FieldDateOfBirth is the date of birth in YYYY-MM-DD form
	FieldDateOfBirth Field = "dateOfBirth"
)

// Gender options offered by the form
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// DateLayout is the on-disk and input layout of the date of birth
const DateLayout = "2006-01-02"

// LineOrder is the column order of a persisted line.
var LineOrder = []Field{FieldFullName, FieldIDNumber, FieldGender, FieldProvince, FieldDateOfBirth}

// ValidationOrder is the order in which empty fields are reported.
// It differs from LineOrder: gender is checked last.
var ValidationOrder = []Field{FieldFullName, FieldIDNumber, FieldProvince, FieldDateOfBirth, FieldGender}

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// Label returns a human readable name for the field
func (f Field) Label() string {
	switch f {
	case FieldFullName:
		return "Full Name"
	case FieldIDNumber:
		return "ID Number"
	case FieldGender:
		return "Gender"
	case FieldProvince:
		return "Home Province"
	case FieldDateOfBirth:
		return "Date of Birth"
	default:
		return string(f)
	}
}

// GenderOptions returns the gender choices shown by the form
func GenderOptions() []string {
	return []string{GenderMale, GenderFemale}
}
