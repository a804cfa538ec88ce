package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/internal/timetable/parser"
)

// Load parses and validates an uploaded ICS document, then stores the raw
// text as the session timetable. Validation runs against the full parsed set
// so an all-past upload is reported as such, not as empty. Failures leave the
// previous timetable alone.
func (uc *implUseCase) Load(ctx context.Context, sc model.Scope, input timetable.LoadInput) (timetable.LoadOutput, error) {
	if len(input.Content) == 0 {
		return timetable.LoadOutput{}, timetable.ErrEmptyUpload
	}

	uc.l.Infof(ctx, "Load: session=%s file=%q size=%d", sc.SessionID, input.Filename, len(input.Content))

	events, err := uc.parser.Parse(ctx, input.Content)
	if err != nil {
		if errors.Is(err, parser.ErrMalformedDocument) {
			return timetable.LoadOutput{}, fmt.Errorf("%w: %v", timetable.ErrMalformedTimetable, err)
		}
		return timetable.LoadOutput{}, fmt.Errorf("failed to parse timetable: %w", err)
	}

	now := time.Now()
	if err := timetable.Validate(events, now); err != nil {
		return timetable.LoadOutput{}, err
	}

	if _, err := uc.sessions.SaveTimetable(ctx, sc.SessionID, string(input.Content)); err != nil {
		return timetable.LoadOutput{}, fmt.Errorf("failed to store timetable: %w", err)
	}

	future := timetable.FutureEvents(events, now)
	uc.l.Infof(ctx, "Load: session=%s stored %d event(s), %d upcoming", sc.SessionID, len(events), len(future))
	return timetable.LoadOutput{Events: future, EventCount: len(future)}, nil
}

// Events re-parses the session's stored timetable and returns the upcoming
// events only.
func (uc *implUseCase) Events(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	events, err := uc.snapshot(ctx, sc)
	if err != nil {
		return nil, err
	}
	return timetable.FutureEvents(events, time.Now()), nil
}

// snapshot re-parses the stored timetable without any future-filtering, so
// callers that validate can tell an all-past set from an empty one. Both a
// missing timetable and one that no longer parses yield an empty slice:
// callers treat the two identically and render the same advisory.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	sess, err := uc.sessions.Get(ctx, sc.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.TimetableRaw == "" {
		return []model.Event{}, nil
	}

	events, err := uc.parser.Parse(ctx, []byte(sess.TimetableRaw))
	if err != nil {
		uc.l.Warnf(ctx, "snapshot: session=%s stored timetable no longer parses: %v", sc.SessionID, err)
		return []model.Event{}, nil
	}

	return events, nil
}
