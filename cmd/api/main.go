package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timetable-assistant/config"
	_ "timetable-assistant/docs" // Swagger docs
	"timetable-assistant/internal/httpserver"
	"timetable-assistant/internal/session"
	sessionHTTP "timetable-assistant/internal/session/delivery/http"
	timetableHTTP "timetable-assistant/internal/timetable/delivery/http"
	"timetable-assistant/internal/timetable/parser"
	timetableUC "timetable-assistant/internal/timetable/usecase"
	"timetable-assistant/pkg/gcalendar"
	"timetable-assistant/pkg/gemini"
	"timetable-assistant/pkg/log"
)

// @title       Timetable Assistant API
// @description Student timetable assistant: ICS upload, schedule questions, Gemini-backed answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timetable Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core components
	sessionStore := session.NewStore(
		logger,
		cfg.Session.MaxEntries,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	)

	icsParser := parser.New(logger)

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing; fallback questions will be answered with an apology")
	}

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Timetable domain
	uc := timetableUC.New(
		logger,
		icsParser,
		sessionStore,
		geminiClient,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.HTTPServer.Timezone,
	)

	sessionHandler := sessionHTTP.New(logger, sessionStore)
	timetableHandler := timetableHTTP.New(logger, uc, sessionStore)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.HTTPServer.RateLimitPerMin,
		SessionHandler:   sessionHandler,
		TimetableHandler: timetableHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
