package gcalendar

import "time"

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Status      string
	Recurrence  []string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
