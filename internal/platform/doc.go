package platform

// Package platform contains OS integration used by the form: resolving and
// preparing the records file location and opening or revealing it with the
// desktop's default tools.
