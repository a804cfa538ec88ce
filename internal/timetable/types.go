package timetable

import "timetable-assistant/internal/model"

// LoadInput is the input for loading an uploaded timetable.
type LoadInput struct {
	Filename string
	Content  []byte
}

// LoadOutput is the result of a successful timetable load.
type LoadOutput struct {
	Events     []model.Event
	EventCount int
}

// ImportInput is the input for importing from Google Calendar.
type ImportInput struct {
	CalendarID string
	WindowDays int // how far ahead to import; 0 means the default window
}

// AnswerSource records which path produced an answer.
type AnswerSource string

const (
	SourceNextClass      AnswerSource = "next_class"
	SourceNextClassOnDay AnswerSource = "next_class_on_day"
	SourceLLM            AnswerSource = "llm"

	// SourceAdvisory marks replies the presentation layer substitutes for a
	// failed answer, like the empty-timetable notice or the apology.
	SourceAdvisory AnswerSource = "advisory"
)

// AnswerInput is the input for answering a schedule question.
type AnswerInput struct {
	Question string
}

// AnswerOutput is the result of answering a schedule question.
type AnswerOutput struct {
	Answer string
	Source AnswerSource
}
