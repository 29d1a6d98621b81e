package store

// Package store implements the record store: it validates a candidate record
// and appends it as one comma-joined line to an append-only text file. The
// file is opened, written and closed on every append.
