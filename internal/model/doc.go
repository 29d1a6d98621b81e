package model

// Package model defines the personal record captured by the form, its field
// enumeration, line serialization and the validation errors returned when a
// record is not ready to be saved.
