package http

import (
	"timetable-assistant/internal/model"
	"timetable-assistant/internal/session"
	"timetable-assistant/pkg/response"
)

// --- Request DTOs ---

type updateProfileReq struct {
	Name       string `json:"name"       binding:"max=255"`
	Major      string `json:"major"      binding:"max=255"`
	University string `json:"university" binding:"max=255"`
}

func (r updateProfileReq) toProfile() model.StudentProfile {
	return model.StudentProfile{
		Name:       r.Name,
		Major:      r.Major,
		University: r.University,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID           string               `json:"id"`
	Profile      model.StudentProfile `json:"profile"`
	HasTimetable bool                 `json:"hasTimetable"`
	Messages     []model.ChatMessage  `json:"messages"`
	CreatedAt    response.DateTime    `json:"createdAt"`
	UpdatedAt    response.DateTime    `json:"updatedAt"`
}

func newSessionResp(sess session.Session) sessionResp {
	messages := sess.Messages
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return sessionResp{
		ID:           sess.ID,
		Profile:      sess.Profile,
		HasTimetable: sess.TimetableRaw != "",
		Messages:     messages,
		CreatedAt:    response.DateTime(sess.CreatedAt),
		UpdatedAt:    response.DateTime(sess.UpdatedAt),
	}
}

type createResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newCreateResp(sess session.Session) createResp {
	return createResp{Session: newSessionResp(sess)}
}

type detailResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newDetailResp(sess session.Session) detailResp {
	return detailResp{Session: newSessionResp(sess)}
}
