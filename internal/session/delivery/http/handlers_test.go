package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timetable-assistant/internal/middleware"
	"timetable-assistant/internal/session"
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

func newTestRouter(t *testing.T) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	store := session.NewStore(l, 10, time.Minute)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/sessions"), New(l, store), middleware.New(l, 6000))
	return r, store
}

func decodeResp(t *testing.T, body *bytes.Buffer) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestSessionLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	// Create
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200", w.Code)
	}
	resp := decodeResp(t, w.Body)
	sess := resp.Data.(map[string]interface{})["session"].(map[string]interface{})
	id, _ := sess["id"].(string)
	if id == "" {
		t.Fatal("create must return a session id")
	}
	if sess["hasTimetable"] != false {
		t.Error("new session must not report a timetable")
	}
	createdAt, _ := sess["createdAt"].(string)
	if _, err := time.ParseInLocation(response.DateTimeFormat, createdAt, time.Local); err != nil {
		t.Errorf("createdAt = %q, want %q format", createdAt, response.DateTimeFormat)
	}

	// Update profile
	body, _ := json.Marshal(map[string]string{
		"name":       "Linh",
		"major":      "Computer Science",
		"university": "HUST",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+id+"/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update profile status = %d, want 200", w.Code)
	}

	// Detail reflects the profile
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", w.Code)
	}
	resp = decodeResp(t, w.Body)
	sess = resp.Data.(map[string]interface{})["session"].(map[string]interface{})
	profile := sess["profile"].(map[string]interface{})
	if profile["name"] != "Linh" || profile["major"] != "Computer Science" {
		t.Errorf("profile = %v", profile)
	}
	if messages, ok := sess["messages"].([]interface{}); !ok || len(messages) != 0 {
		t.Errorf("messages = %v, want an empty array", sess["messages"])
	}
}

func TestSessionNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("update_profile", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"name": "x"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/nope/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
