package http

import (
	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/session"
	"timetable-assistant/pkg/log"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

type handler struct {
	l        log.Logger
	sessions session.Store
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, sessions session.Store) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
	}
}
