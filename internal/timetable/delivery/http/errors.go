package http

import (
	"errors"

	"timetable-assistant/internal/timetable"
)

// uploadError translates load failures into user-facing errors. Every known
// condition gets its fixed display string; anything else becomes the apology.
func (h *handler) uploadError(err error) error {
	switch {
	case errors.Is(err, timetable.ErrEmptyUpload), errors.Is(err, errMissingFile):
		return errors.New(timetable.MsgMalformedTimetable)
	case errors.Is(err, timetable.ErrMalformedTimetable):
		return errors.New(timetable.MsgMalformedTimetable)
	case errors.Is(err, timetable.ErrEmptyTimetable):
		return errors.New(timetable.MsgEmptyTimetable)
	case errors.Is(err, timetable.ErrOnlyPastEvents):
		return errors.New(timetable.MsgOnlyPastEvents)
	default:
		return err
	}
}

// askAdvisory flattens an answer failure into the chat reply the user sees.
// The question always gets a textual answer; only missing sessions and bad
// requests surface as HTTP errors.
func (h *handler) askAdvisory(err error) (string, bool) {
	switch {
	case errors.Is(err, timetable.ErrEmptyTimetable):
		return timetable.MsgEmptyTimetable, true
	case errors.Is(err, timetable.ErrOnlyPastEvents):
		return timetable.MsgOnlyPastEvents, true
	default:
		return "", false
	}
}
