package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/session"
	"timetable-assistant/pkg/response"
)

var errMissingSessionID = errors.New("session id is required")

// Create godoc
// @Summary     Create a session
// @Description Creates a new browser session and returns its ID.
// @Tags        Session
// @Produce     json
// @Success     200 {object} createResp
// @Router      /api/v1/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessions.Create(ctx)
	if err != nil {
		h.l.Errorf(ctx, "sessions.Create: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(sess))
}

// Detail godoc
// @Summary     Get session detail
// @Description Returns the session profile, transcript, and timetable presence.
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	sess, err := h.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "sessions.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(sess))
}

// UpdateProfile godoc
// @Summary     Update the student profile
// @Description Replaces the profile stored on the session.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Session ID"
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.sessions.SaveProfile(ctx, id, req.toProfile())
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "sessions.SaveProfile: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(sess))
}
