package session

import (
	"context"

	"timetable-assistant/internal/model"
)

// Store is the session repository. Implementations are safe for concurrent use.
type Store interface {
	// Create allocates a new empty session.
	Create(ctx context.Context) (Session, error)

	// Get returns the session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)

	// SaveProfile replaces the session's profile fields.
	SaveProfile(ctx context.Context, id string, profile model.StudentProfile) (Session, error)

	// SaveTimetable replaces the raw timetable text and resets the transcript.
	SaveTimetable(ctx context.Context, id string, raw string) (Session, error)

	// AppendMessages appends chat messages to the transcript.
	AppendMessages(ctx context.Context, id string, msgs ...model.ChatMessage) (Session, error)
}
