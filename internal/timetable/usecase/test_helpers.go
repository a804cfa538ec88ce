package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timetable-assistant/internal/model"
	"timetable-assistant/internal/session"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockSessionStore is a map-backed session.Store for tests.
type mockSessionStore struct {
	sessions map[string]session.Session
	saveErr  error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]session.Session)}
}

func (m *mockSessionStore) Create(ctx context.Context) (session.Session, error) {
	sess := session.Session{ID: fmt.Sprintf("sess-%d", len(m.sessions)+1), CreatedAt: time.Now()}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (session.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (m *mockSessionStore) SaveProfile(ctx context.Context, id string, profile model.StudentProfile) (session.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	sess.Profile = profile
	m.sessions[id] = sess
	return sess, nil
}

func (m *mockSessionStore) SaveTimetable(ctx context.Context, id string, raw string) (session.Session, error) {
	if m.saveErr != nil {
		return session.Session{}, m.saveErr
	}
	sess, ok := m.sessions[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	sess.TimetableRaw = raw
	sess.Messages = nil
	m.sessions[id] = sess
	return sess, nil
}

func (m *mockSessionStore) AppendMessages(ctx context.Context, id string, msgs ...model.ChatMessage) (session.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	sess.Messages = append(sess.Messages, msgs...)
	m.sessions[id] = sess
	return sess, nil
}

// icsDoc builds a minimal ICS document from VEVENT bodies.
func icsDoc(eventBodies ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n")
	for _, body := range eventBodies {
		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(body)
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// icsEvent renders one VEVENT body with UTC timing.
func icsEvent(uid, summary string, start, end time.Time) string {
	const layout = "20060102T150405Z"
	return fmt.Sprintf("UID:%s\r\nSUMMARY:%s\r\nLOCATION:Room 1\r\nDTSTART:%s\r\nDTEND:%s\r\n",
		uid, summary, start.UTC().Format(layout), end.UTC().Format(layout))
}
