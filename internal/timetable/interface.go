package timetable

import (
	"context"

	"timetable-assistant/internal/model"
)

// UseCase defines the business logic interface for the timetable domain.
type UseCase interface {
	// Load parses an uploaded ICS document, validates it, and stores the raw
	// text as the session's timetable. A successful load resets the chat
	// transcript. Previously loaded state is untouched on failure.
	Load(ctx context.Context, sc model.Scope, input LoadInput) (LoadOutput, error)

	// ImportGoogleCalendar pulls upcoming events from a Google Calendar and
	// stores them as the session timetable, replacing any uploaded file.
	ImportGoogleCalendar(ctx context.Context, sc model.Scope, input ImportInput) (LoadOutput, error)

	// Events re-parses the session's stored timetable and returns the current
	// future events. An unparsable or missing timetable yields an empty slice.
	Events(ctx context.Context, sc model.Scope) ([]model.Event, error)

	// Answer answers a natural-language question about the session's schedule,
	// handling the fixed next-class intents locally and delegating everything
	// else to the external answerer.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)
}
