package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/pkg/gcalendar"
)

const defaultImportWindowDays = 90

// ImportGoogleCalendar pulls upcoming events from Google Calendar, renders
// them as an ICS document, and stores that document as the session timetable.
// Going through ICS keeps the load/re-parse lifecycle identical to uploads.
func (uc *implUseCase) ImportGoogleCalendar(ctx context.Context, sc model.Scope, input timetable.ImportInput) (timetable.LoadOutput, error) {
	if uc.gcal == nil {
		return timetable.LoadOutput{}, timetable.ErrGCalNotConfigured
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.gcalID
	}
	windowDays := input.WindowDays
	if windowDays <= 0 {
		windowDays = defaultImportWindowDays
	}

	now := time.Now()
	uc.l.Infof(ctx, "ImportGoogleCalendar: session=%s calendar=%q window=%dd", sc.SessionID, calendarID, windowDays)

	events, err := uc.gcal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, windowDays),
	})
	if err != nil {
		return timetable.LoadOutput{}, fmt.Errorf("google calendar import failed: %w", err)
	}

	raw := renderICS(events)
	return uc.Load(ctx, sc, timetable.LoadInput{
		Filename: fmt.Sprintf("gcal-%s.ics", calendarID),
		Content:  []byte(raw),
	})
}

// renderICS serializes imported events back into an ICS document.
func renderICS(events []gcalendar.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//timetable-assistant//google-calendar-import//EN")

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Summary)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Status != "" {
			// Google reports lowercase statuses; ICS STATUS is uppercase.
			ve.SetProperty(ical.ComponentPropertyStatus, strings.ToUpper(ev.Status))
		}
		if ev.AllDay {
			ve.SetAllDayStartAt(ev.StartTime)
			ve.SetAllDayEndAt(ev.EndTime)
		} else {
			ve.SetStartAt(ev.StartTime)
			ve.SetEndAt(ev.EndTime)
		}
		for _, rule := range ev.Recurrence {
			// Google returns full content lines like "RRULE:FREQ=WEEKLY".
			if name, value, ok := splitContentLine(rule); ok && name == "RRULE" {
				ve.SetProperty(ical.ComponentPropertyRrule, value)
			}
		}
	}

	return cal.Serialize()
}

func splitContentLine(line string) (name, value string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == ':' {
			return line[:i], line[i+1:], true
		}
	}
	return "", "", false
}
