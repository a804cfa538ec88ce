package http

import (
	"strings"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/timetable"
)

// --- Request DTOs ---

type uploadReq struct {
	Filename string
	Content  []byte
}

func (r uploadReq) toInput() timetable.LoadInput {
	return timetable.LoadInput{
		Filename: r.Filename,
		Content:  r.Content,
	}
}

type askReq struct {
	Question string `json:"question" binding:"required"`
}

func (r askReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return timetable.ErrEmptyQuestion
	}
	return nil
}

func (r askReq) toInput() timetable.AnswerInput {
	return timetable.AnswerInput{Question: r.Question}
}

type importReq struct {
	CalendarID string `json:"calendarId"`
	WindowDays int    `json:"windowDays" binding:"omitempty,min=1,max=366"`
}

func (r importReq) toInput() timetable.ImportInput {
	return timetable.ImportInput{
		CalendarID: r.CalendarID,
		WindowDays: r.WindowDays,
	}
}

// --- Response DTOs ---

type uploadResp struct {
	Events     []model.Event `json:"events"`
	EventCount int           `json:"eventCount"`
}

func (h *handler) newUploadResp(out timetable.LoadOutput) uploadResp {
	events := out.Events
	if events == nil {
		events = []model.Event{}
	}
	return uploadResp{Events: events, EventCount: out.EventCount}
}

type eventsResp struct {
	Events []model.Event `json:"events"`
	Count  int           `json:"count"`
}

func (h *handler) newEventsResp(events []model.Event) eventsResp {
	if events == nil {
		events = []model.Event{}
	}
	return eventsResp{Events: events, Count: len(events)}
}

type askResp struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

func (h *handler) newAskResp(out timetable.AnswerOutput) askResp {
	return askResp{Answer: out.Answer, Source: string(out.Source)}
}
