package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"timetable-assistant/pkg/gcalendar"
)

func TestNewClientFromCredentialsJSON(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app config with token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app config without token", func(t *testing.T) {
		os.Remove("token.json")
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Errorf("expected failure without token.json")
		}
	})
}

func TestListEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("singleEvents") != "true" {
			t.Errorf("expected singleEvents=true, got %q", r.URL.Query().Get("singleEvents"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "ev1",
					"summary": "Databases",
					"location": "Room 12",
					"status": "confirmed",
					"start": {"dateTime": "2030-04-01T09:00:00Z"},
					"end":   {"dateTime": "2030-04-01T10:30:00Z"}
				},
				{
					"id": "ev2",
					"summary": "Reading day",
					"start": {"date": "2030-04-02"},
					"end":   {"date": "2030-04-03"}
				},
				{
					"id": "broken",
					"summary": "No timing"
				}
			]
		}`))
	}))
	defer ts.Close()

	httpClient := &http.Client{Transport: &rewriteTransport{host: ts.Listener.Addr().String()}}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 usable events, got %d", len(events))
	}
	if events[0].Summary != "Databases" || events[0].Location != "Room 12" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if got := events[0].EndTime.Sub(events[0].StartTime); got != 90*time.Minute {
		t.Errorf("expected 90m duration, got %v", got)
	}
	if !events[1].AllDay {
		t.Errorf("expected all-day event for date-only timing")
	}
}

// rewriteTransport redirects every request to the local test server.
type rewriteTransport struct {
	host string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return http.DefaultTransport.RoundTrip(req)
}
