package timetable

import "errors"

// Domain-specific errors for the timetable package. The HTTP boundary is the
// only place these are flattened into user-facing display strings.
var (
	ErrEmptyQuestion      = errors.New("question is empty")
	ErrEmptyTimetable     = errors.New("timetable has no events")
	ErrOnlyPastEvents     = errors.New("timetable contains only past events")
	ErrMalformedTimetable = errors.New("timetable document is malformed")
	ErrEmptyUpload        = errors.New("uploaded file is empty")
	ErrGCalNotConfigured  = errors.New("google calendar import is not configured")
)
