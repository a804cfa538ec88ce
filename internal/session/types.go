package session

import (
	"time"

	"timetable-assistant/internal/model"
)

// Session is the ephemeral per-tab record: profile fields, the raw uploaded
// timetable text, and the chat transcript. Parsed events are never stored;
// the raw text is re-parsed on access.
type Session struct {
	ID string

	Profile      model.StudentProfile
	TimetableRaw string
	Messages     []model.ChatMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}
