package model

import "time"

// DefaultStatus is assigned when a calendar entry carries no STATUS property.
const DefaultStatus = "CONFIRMED"

// Event is one normalized timetable entry parsed from an ICS upload.
type Event struct {
	Summary  string `json:"summary"`
	Location string `json:"location"`

	// Start / End are absolute instants with the source timezone resolved.
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`

	// Duration is an ISO-8601 style token (PT<H>H<M>M) derived from End-Start,
	// or PT1H when the source omits an explicit end/duration. Informational
	// only; it is never re-validated against Start/End.
	Duration string `json:"duration"`

	Status      string `json:"status"`
	Description string `json:"description"`

	// Recurrence is the raw RRULE value, stored verbatim and never expanded.
	Recurrence string `json:"recurrence,omitempty"`

	// Instructor and ClassTitle are extracted from labeled lines inside the
	// description ("Instructor: ...", "Class Title: ..."). Empty when absent.
	Instructor string `json:"instructor,omitempty"`
	ClassTitle string `json:"classTitle,omitempty"`
}

// IsFuture reports whether the event ends strictly after now.
func (e Event) IsFuture(now time.Time) bool {
	return e.End.After(now)
}
