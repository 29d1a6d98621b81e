package store

import (
	"fmt"
	"os"

	"github.com/ytget/user-form/internal/model"
	"github.com/ytget/user-form/internal/platform"
)

// DefaultFileName is the records file used when no path is configured
const DefaultFileName = "userRecords.txt"

const (
	openFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	lineEnd   = "\n"
)

// Store appends records to a flat text file
type Store struct {
	path string
}

var _ Recorder = (*Store)(nil)

// NewStore creates a store backed by path; an empty path means DefaultFileName
// in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Validate reports the first missing field in validation order, or an invalid
// date of birth once all fields are present.
func (s *Store) Validate(record model.Record) error {
	return record.Validate()
}

// Append writes the record and a trailing newline at the end of the file,
// creating the file and its directory when absent. Field values are not
// escaped.
func (s *Store) Append(record model.Record) error {
	if err := platform.EnsureParentDir(s.path); err != nil {
		return fmt.Errorf("failed to create records directory: %w", err)
	}

	f, err := os.OpenFile(s.path, openFlags, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open records file %s: %w", s.path, err)
	}

	if _, err := f.WriteString(record.Line() + lineEnd); err != nil {
		f.Close()
		return fmt.Errorf("failed to write record to %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close records file %s: %w", s.path, err)
	}
	return nil
}

// Save validates the record and appends it. Nothing is written when
// validation fails.
func (s *Store) Save(record model.Record) error {
	if err := s.Validate(record); err != nil {
		return err
	}
	return s.Append(record)
}
