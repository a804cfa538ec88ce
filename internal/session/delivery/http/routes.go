package http

import (
	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/middleware"
)

// RegisterRoutes maps the session lifecycle routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id/profile", h.UpdateProfile)
}
