package store

import (
	"github.com/ytget/user-form/internal/model"
)

// Recorder defines the interface for the record store.
type Recorder interface {
	// Validate reports the first missing field, or an invalid date of birth
	Validate(record model.Record) error

	// Append writes the record as one line at the end of the store
	Append(record model.Record) error

	// Save validates the record and appends it only when it is valid
	Save(record model.Record) error

	// Path returns the backing file
	Path() string
}
