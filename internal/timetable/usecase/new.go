package usecase

import (
	"timetable-assistant/internal/session"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/internal/timetable/parser"
	"timetable-assistant/pkg/gcalendar"
	"timetable-assistant/pkg/gemini"
	pkgLog "timetable-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	parser   *parser.Parser
	sessions session.Store
	llm      *gemini.Client
	gcal     *gcalendar.Client // nil when import is not configured
	gcalID   string
	timezone string
}

var _ timetable.UseCase = (*implUseCase)(nil)

// New creates the timetable UseCase. gcal may be nil; the import operation
// then reports timetable.ErrGCalNotConfigured.
func New(
	l pkgLog.Logger,
	p *parser.Parser,
	sessions session.Store,
	llm *gemini.Client,
	gcal *gcalendar.Client,
	gcalID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		parser:   p,
		sessions: sessions,
		llm:      llm,
		gcal:     gcal,
		gcalID:   gcalID,
		timezone: timezone,
	}
}
