package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/session"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/pkg/response"
)

// Upload godoc
// @Summary     Upload a timetable
// @Description Parses and validates an ICS timetable file, then stores it on the session.
// @Tags        Timetable
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path string true "Session ID"
// @Param       file formData file true "ICS timetable file"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Invalid or unusable timetable"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/timetable [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, h.uploadError(err), nil)
		return
	}

	output, err := h.uc.Load(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Load: %v", err)
		response.Error(c, h.uploadError(err), nil)
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// Events godoc
// @Summary     List timetable events
// @Description Returns the events parsed from the session's stored timetable.
// @Tags        Timetable
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} eventsResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.Events(ctx, sc)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Events: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newEventsResp(events))
}

// Ask godoc
// @Summary     Ask a schedule question
// @Description Answers a natural-language question about the stored timetable.
// @Description Unusable timetables and answerer failures still produce a textual
// @Description reply; only missing sessions and empty questions are HTTP errors.
// @Tags        Timetable
// @Accept      json
// @Produce     json
// @Param       id   path string true "Session ID"
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Empty question"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/sessions/{id}/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, sc, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			response.NotFound(c, err)
			return
		case errors.Is(err, timetable.ErrEmptyQuestion):
			response.Error(c, err, nil)
			return
		}

		if advisory, ok := h.askAdvisory(err); ok {
			output = timetable.AnswerOutput{Answer: advisory, Source: timetable.SourceAdvisory}
		} else {
			h.l.Errorf(ctx, "uc.Answer: %v", err)
			output = timetable.AnswerOutput{Answer: timetable.MsgApology, Source: timetable.SourceAdvisory}
		}
	}

	h.recordExchange(c, sc, req.Question, output.Answer)
	response.OK(c, h.newAskResp(output))
}

// ImportGoogleCalendar godoc
// @Summary     Import timetable from Google Calendar
// @Description Pulls upcoming events from Google Calendar and stores them as the session timetable.
// @Tags        Timetable
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Session ID"
// @Param       body body importReq false "Import options"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Import not configured or calendar unusable"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/import/google-calendar [POST]
func (h *handler) ImportGoogleCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ImportGoogleCalendar(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, err)
			return
		}
		if errors.Is(err, timetable.ErrGCalNotConfigured) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ImportGoogleCalendar: %v", err)
		response.Error(c, h.uploadError(err), nil)
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// recordExchange appends the question and the rendered reply to the session
// transcript. Recording failures are logged and swallowed; the reply already
// went out.
func (h *handler) recordExchange(c *gin.Context, sc model.Scope, question, answer string) {
	ctx := c.Request.Context()
	now := time.Now()
	if _, err := h.sessions.AppendMessages(ctx, sc.SessionID,
		model.ChatMessage{Role: model.RoleUser, Text: question, At: now},
		model.ChatMessage{Role: model.RoleAssistant, Text: answer, At: now},
	); err != nil {
		h.l.Warnf(ctx, "recordExchange: session=%s: %v", sc.SessionID, err)
	}
}
