package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/middleware"
	"timetable-assistant/internal/model"
	"timetable-assistant/internal/session"
	"timetable-assistant/internal/timetable"
	"timetable-assistant/pkg/response"
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

// mockUseCase returns canned results per operation.
type mockUseCase struct {
	loadOut   timetable.LoadOutput
	loadErr   error
	events    []model.Event
	eventsErr error
	answerOut timetable.AnswerOutput
	answerErr error
	importOut timetable.LoadOutput
	importErr error
}

func (m *mockUseCase) Load(ctx context.Context, sc model.Scope, input timetable.LoadInput) (timetable.LoadOutput, error) {
	return m.loadOut, m.loadErr
}

func (m *mockUseCase) ImportGoogleCalendar(ctx context.Context, sc model.Scope, input timetable.ImportInput) (timetable.LoadOutput, error) {
	return m.importOut, m.importErr
}

func (m *mockUseCase) Events(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	return m.events, m.eventsErr
}

func (m *mockUseCase) Answer(ctx context.Context, sc model.Scope, input timetable.AnswerInput) (timetable.AnswerOutput, error) {
	return m.answerOut, m.answerErr
}

// mockSessionStore records transcript appends.
type mockSessionStore struct {
	appended []model.ChatMessage
}

func (m *mockSessionStore) Create(ctx context.Context) (session.Session, error) {
	return session.Session{ID: "sess-1", CreatedAt: time.Now()}, nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (session.Session, error) {
	return session.Session{ID: id}, nil
}

func (m *mockSessionStore) SaveProfile(ctx context.Context, id string, profile model.StudentProfile) (session.Session, error) {
	return session.Session{ID: id, Profile: profile}, nil
}

func (m *mockSessionStore) SaveTimetable(ctx context.Context, id string, raw string) (session.Session, error) {
	return session.Session{ID: id, TimetableRaw: raw}, nil
}

func (m *mockSessionStore) AppendMessages(ctx context.Context, id string, msgs ...model.ChatMessage) (session.Session, error) {
	m.appended = append(m.appended, msgs...)
	return session.Session{ID: id, Messages: m.appended}, nil
}

func newTestRouter(uc timetable.UseCase, store *mockSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	r := gin.New()
	h := New(l, uc, store)
	RegisterRoutes(r.Group("/api/v1/sessions/:id"), h, middleware.New(l, 6000))
	return r
}

func decodeResp(t *testing.T, body *bytes.Buffer) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestAskHandler(t *testing.T) {
	askJSON := func(question string) *http.Request {
		body, _ := json.Marshal(map[string]string{"question": question})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/ask", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("success_records_transcript", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{answerOut: timetable.AnswerOutput{Answer: "Room 101 at 9 AM", Source: timetable.SourceLLM}}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("where is my first class?"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["answer"] != "Room 101 at 9 AM" {
			t.Errorf("answer = %v", data["answer"])
		}
		if data["source"] != "llm" {
			t.Errorf("source = %v, want llm", data["source"])
		}
		if len(store.appended) != 2 {
			t.Fatalf("transcript entries = %d, want 2", len(store.appended))
		}
		if store.appended[0].Role != model.RoleUser || store.appended[1].Role != model.RoleAssistant {
			t.Error("transcript must record the user question then the assistant reply")
		}
	})

	t.Run("empty_timetable_becomes_advisory", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{answerErr: timetable.ErrEmptyTimetable}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("when is my next class?"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["answer"] != timetable.MsgEmptyTimetable {
			t.Errorf("answer = %v, want the empty-timetable notice", data["answer"])
		}
		if data["source"] != "advisory" {
			t.Errorf("source = %v, want advisory", data["source"])
		}
		if len(store.appended) != 2 {
			t.Errorf("advisory replies are transcript entries too, got %d", len(store.appended))
		}
	})

	t.Run("only_past_events_becomes_advisory", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{answerErr: timetable.ErrOnlyPastEvents}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("when is my next class?"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["answer"] != timetable.MsgOnlyPastEvents {
			t.Errorf("answer = %v, want the past-events notice", data["answer"])
		}
	})

	t.Run("answerer_failure_becomes_apology", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{answerErr: fmt.Errorf("external answerer failed: boom")}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("what courses do I have?"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["answer"] != timetable.MsgApology {
			t.Errorf("answer = %v, want the apology", data["answer"])
		}
	})

	t.Run("missing_session_is_404", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{answerErr: session.ErrNotFound}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("when is my next class?"))

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if len(store.appended) != 0 {
			t.Error("no transcript entries for a missing session")
		}
	})

	t.Run("blank_question_is_400", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, askJSON("   "))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestUploadHandler(t *testing.T) {
	multipartReq := func(t *testing.T, field, filename, content string) *http.Request {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/timetable", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	t.Run("success", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{loadOut: timetable.LoadOutput{
			Events:     []model.Event{{Summary: "Algorithms"}},
			EventCount: 1,
		}}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartReq(t, "file", "timetable.ics", "BEGIN:VCALENDAR..."))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["eventCount"] != float64(1) {
			t.Errorf("eventCount = %v, want 1", data["eventCount"])
		}
	})

	t.Run("missing_file_part", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartReq(t, "wrong_field", "timetable.ics", "x"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		resp := decodeResp(t, w.Body)
		if resp.Message != timetable.MsgMalformedTimetable {
			t.Errorf("message = %v", resp.Message)
		}
	})

	t.Run("malformed_timetable", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{loadErr: fmt.Errorf("wrap: %w", timetable.ErrMalformedTimetable)}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartReq(t, "file", "timetable.ics", "junk"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		resp := decodeResp(t, w.Body)
		if resp.Message != timetable.MsgMalformedTimetable {
			t.Errorf("message = %v, want %q", resp.Message, timetable.MsgMalformedTimetable)
		}
	})

	t.Run("only_past_events", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{loadErr: timetable.ErrOnlyPastEvents}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartReq(t, "file", "timetable.ics", "BEGIN:VCALENDAR..."))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		resp := decodeResp(t, w.Body)
		if resp.Message != timetable.MsgOnlyPastEvents {
			t.Errorf("message = %v, want %q", resp.Message, timetable.MsgOnlyPastEvents)
		}
	})

	t.Run("missing_session_is_404", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{loadErr: session.ErrNotFound}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartReq(t, "file", "timetable.ics", "BEGIN:VCALENDAR..."))

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestEventsHandler(t *testing.T) {
	t.Run("returns_event_list", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{events: []model.Event{{Summary: "Algorithms"}, {Summary: "Databases"}}}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/sess-1/events", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["count"] != float64(2) {
			t.Errorf("count = %v, want 2", data["count"])
		}
	})

	t.Run("empty_list_not_null", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{events: nil}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/sess-1/events", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"events":[]`) {
			t.Errorf("body = %s, want an empty array", w.Body.String())
		}
	})
}

func TestImportHandler(t *testing.T) {
	t.Run("not_configured", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{importErr: timetable.ErrGCalNotConfigured}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/import/google-calendar", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		store := &mockSessionStore{}
		uc := &mockUseCase{importOut: timetable.LoadOutput{EventCount: 3, Events: []model.Event{{}, {}, {}}}}
		r := newTestRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/import/google-calendar", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeResp(t, w.Body)
		data := resp.Data.(map[string]interface{})
		if data["eventCount"] != float64(3) {
			t.Errorf("eventCount = %v, want 3", data["eventCount"])
		}
	})
}

func TestRateLimit(t *testing.T) {
	store := &mockSessionStore{}
	uc := &mockUseCase{answerOut: timetable.AnswerOutput{Answer: "ok", Source: timetable.SourceLLM}}

	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	r := gin.New()
	h := New(l, uc, store)
	// One request per minute, burst 1.
	RegisterRoutes(r.Group("/api/v1/sessions/:id"), h, middleware.New(l, 1))

	body, _ := json.Marshal(map[string]string{"question": "next class?"})
	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/ask", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, want)
		}
	}
}
