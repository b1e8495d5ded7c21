package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mail-task-planner/pkg/gcalendar"
)

func TestCreateEvent(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var body struct {
			Summary string `json:"summary"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "evt-1",
			"summary":  body.Summary,
			"htmlLink": "https://calendar.example/evt-1",
		})
	}))
	defer ts.Close()

	client, err := gcalendar.NewClientFromHTTP(context.Background(), ts.Client(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	start := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Write report",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.ID != "evt-1" || event.HTMLLink != "https://calendar.example/evt-1" {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.Summary != "Write report" {
		t.Errorf("summary = %q, want %q", event.Summary, "Write report")
	}
	if !strings.Contains(gotPath, "/calendars/primary/events") {
		t.Errorf("empty calendar ID should default to primary, path = %q", gotPath)
	}
}

func TestNewClientFromCredentialsJSONRejectsGarbage(t *testing.T) {
	if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"not":"credentials"}`)); err == nil {
		t.Fatalf("expected error for unsupported credentials format")
	}
}
