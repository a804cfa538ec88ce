package http

import (
	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/session"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/pkg/log"
)

// Handler is the public interface for the timetable HTTP delivery layer.
type Handler interface {
	Upload(c *gin.Context)
	Events(c *gin.Context)
	Ask(c *gin.Context)
	ImportGoogleCalendar(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       timetable.UseCase
	sessions session.Store
}

// New creates a new HTTP handler for the timetable domain. The session store
// is used to record the question/answer transcript after presentation.
func New(l log.Logger, uc timetable.UseCase, sessions session.Store) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
