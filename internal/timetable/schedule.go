package timetable

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"timetable-assistant/internal/model"
)

// weekdayNames is ordered so weekday extraction from a question is
// deterministic when multiple names appear.
var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Validate re-checks the event set against now. It returns ErrEmptyTimetable
// for an empty set and ErrOnlyPastEvents when every event has already ended.
// This runs on every question independent of parse-time filtering, since
// events can age out between load and query time.
func Validate(events []model.Event, now time.Time) error {
	if len(events) == 0 {
		return ErrEmptyTimetable
	}
	for _, ev := range events {
		if ev.IsFuture(now) {
			return nil
		}
	}
	return ErrOnlyPastEvents
}

// FutureEvents returns the events whose end instant is strictly after now,
// preserving input order.
func FutureEvents(events []model.Event, now time.Time) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.IsFuture(now) {
			out = append(out, ev)
		}
	}
	return out
}

// NextClass returns the future event with the earliest start instant. Ties
// keep the original order. ok is false when no event ends after now.
func NextClass(events []model.Event, now time.Time) (model.Event, bool) {
	future := FutureEvents(events, now)
	sort.SliceStable(future, func(i, j int) bool {
		return future[i].Start.Before(future[j].Start)
	})
	if len(future) == 0 {
		return model.Event{}, false
	}
	return future[0], true
}

// NextClassOnDay returns the earliest future event whose start falls on the
// named weekday, computed in loc. dayName is matched case-insensitively.
func NextClassOnDay(events []model.Event, dayName string, now time.Time, loc *time.Location) (model.Event, bool) {
	target, ok := weekdays[strings.ToLower(dayName)]
	if !ok {
		return model.Event{}, false
	}

	matching := make([]model.Event, 0)
	for _, ev := range FutureEvents(events, now) {
		if ev.Start.In(loc).Weekday() == target {
			matching = append(matching, ev)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Start.Before(matching[j].Start)
	})
	if len(matching) == 0 {
		return model.Event{}, false
	}
	return matching[0], true
}

// QuestionWeekday returns the weekday name mentioned in the question, or ""
// when none is present.
func QuestionWeekday(question string) string {
	lower := strings.ToLower(question)
	for _, name := range weekdayNames {
		if strings.Contains(lower, name) {
			return name
		}
	}
	return ""
}

// MentionsNextClassPhrase reports whether the question contains the literal
// "next class" phrase. Only this wording qualifies for the day-specific path;
// the other keywords fall through to the general intent.
func MentionsNextClassPhrase(question string) bool {
	return strings.Contains(strings.ToLower(question), NextClassPhrase)
}

// MatchesNextClassIntent reports whether the question contains any of the
// fixed next-class keywords.
func MatchesNextClassIntent(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range NextClassKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FormatEventDate renders an event instant for answers, in loc.
func FormatEventDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(EventDateFormat)
}

// FormatEventDetails renders the multi-line answer block for a next-class
// response: summary, location and start time, plus class title and instructor
// lines when the description carried them.
func FormatEventDetails(ev model.Event, loc *time.Location) string {
	details := fmt.Sprintf("Your next class is %q at %s on %s.",
		ev.Summary, ev.Location, FormatEventDate(ev.Start, loc))

	if ev.ClassTitle != "" {
		details += fmt.Sprintf("\nClass: %s", ev.ClassTitle)
	}
	if ev.Instructor != "" {
		details += fmt.Sprintf("\nInstructor: %s", ev.Instructor)
	}

	return details
}
