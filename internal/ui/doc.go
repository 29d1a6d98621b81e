package ui

// Package ui contains the Fyne-based desktop form. It keeps the transient
// draft typed by the user, builds a record from it on save and hands it to
// the record store. All UI strings are localized via Localization.
