package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/pkg/gemini"
)

// Answer resolves a schedule question: validation first, then the two local
// next-class intents, then the external answerer. Typed errors flow out of
// here untouched; only the HTTP boundary turns them into display strings.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input timetable.AnswerInput) (timetable.AnswerOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return timetable.AnswerOutput{}, timetable.ErrEmptyQuestion
	}

	uc.l.Infof(ctx, "Answer: session=%s question=%q", sc.SessionID, question)

	// Snapshot the full event set at the moment the question is issued; the
	// unfiltered set lets validation distinguish an all-past timetable from
	// an empty one.
	events, err := uc.snapshot(ctx, sc)
	if err != nil {
		return timetable.AnswerOutput{}, err
	}

	now := time.Now()
	if err := timetable.Validate(events, now); err != nil {
		return timetable.AnswerOutput{}, err
	}

	loc := uc.location()

	// Day-qualified next-class intent. Only the literal "next class" phrase
	// combines with a weekday; the wider keyword set stays general.
	if day := timetable.QuestionWeekday(question); day != "" && timetable.MentionsNextClassPhrase(question) {
		ev, ok := timetable.NextClassOnDay(events, day, now, loc)
		if !ok {
			return timetable.AnswerOutput{
				Answer: fmt.Sprintf(timetable.MsgNoClassesOnDayFmt, day),
				Source: timetable.SourceNextClassOnDay,
			}, nil
		}
		return timetable.AnswerOutput{
			Answer: timetable.FormatEventDetails(ev, loc),
			Source: timetable.SourceNextClassOnDay,
		}, nil
	}

	// General next-class intent.
	if timetable.MatchesNextClassIntent(question) {
		ev, ok := timetable.NextClass(events, now)
		if !ok {
			return timetable.AnswerOutput{
				Answer: timetable.MsgNoUpcomingClasses,
				Source: timetable.SourceNextClass,
			}, nil
		}
		return timetable.AnswerOutput{
			Answer: timetable.FormatEventDetails(ev, loc),
			Source: timetable.SourceNextClass,
		}, nil
	}

	// Everything else goes to the external answerer.
	answer, err := uc.askLLM(ctx, question, timetable.FutureEvents(events, now))
	if err != nil {
		return timetable.AnswerOutput{}, fmt.Errorf("external answerer failed: %w", err)
	}

	return timetable.AnswerOutput{Answer: answer, Source: timetable.SourceLLM}, nil
}

// askLLM serializes the schedule, composes the fixed prompt, and calls Gemini.
// A blank reply is replaced with the fixed empty-answer apology.
func (uc *implUseCase) askLLM(ctx context.Context, question string, events []model.Event) (string, error) {
	eventsJSON, err := json.Marshal(events)
	if err != nil {
		return "", fmt.Errorf("failed to serialize events: %w", err)
	}

	prompt := fmt.Sprintf(timetable.PromptTimetableQA, string(eventsJSON), question)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.3,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return timetable.MsgEmptyAnswer, nil
	}
	return answer, nil
}

// location resolves the configured timezone, falling back to UTC.
func (uc *implUseCase) location() *time.Location {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
