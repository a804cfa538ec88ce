package http

import (
	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/middleware"
)

// RegisterRoutes maps the timetable routes under a session-scoped group.
// The ask route is rate limited per session; uploads are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/timetable", h.Upload)
	rg.GET("/events", h.Events)
	rg.POST("/ask", mw.RateLimit(), h.Ask)
	rg.POST("/import/google-calendar", h.ImportGoogleCalendar)
}
