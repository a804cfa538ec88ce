package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	sessionHTTP "timetable-assistant/internal/session/delivery/http"
	timetableHTTP "timetable-assistant/internal/timetable/delivery/http"
	"timetable-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	sessionHandler   sessionHTTP.Handler
	timetableHandler timetableHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	SessionHandler   sessionHTTP.Handler
	TimetableHandler timetableHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		rateLimitPerMin:  cfg.RateLimitPerMin,
		sessionHandler:   cfg.SessionHandler,
		timetableHandler: cfg.TimetableHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionHandler == nil {
		return errors.New("session handler is required")
	}
	if srv.timetableHandler == nil {
		return errors.New("timetable handler is required")
	}
	return nil
}
