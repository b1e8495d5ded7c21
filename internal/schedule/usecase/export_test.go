package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/pkg/gcalendar"
)

type mockCalendarClient struct {
	failSummaries map[string]bool
	requests      []gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.failSummaries[req.Summary] {
		return nil, errors.New("calendar error")
	}
	return &gcalendar.Event{ID: "evt", Summary: req.Summary, HTMLLink: "https://calendar.example/" + req.Summary}, nil
}

func exportDays() []model.ScheduleDay {
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	return []model.ScheduleDay{
		{
			Date: day,
			Tasks: []model.ScheduledTask{
				{Task: task("write report", model.PriorityHigh, 2, "2025-06-20"), StartTime: "09:00"},
				{Task: task("review PR", model.PriorityMedium, 1.5, ""), StartTime: "11:00"},
			},
			TotalHours: 3.5,
		},
	}
}

func TestExport(t *testing.T) {
	t.Run("creates one event per scheduled task", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newTestUseCase(t, cal)

		out, err := uc.Export(context.Background(), schedule.ExportInput{Days: exportDays()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.EventCount != 2 {
			t.Fatalf("expected 2 events, got %d", out.EventCount)
		}

		first := cal.requests[0]
		wantStart := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
		if !first.StartTime.Equal(wantStart) {
			t.Errorf("start = %v, want %v", first.StartTime, wantStart)
		}
		if !first.EndTime.Equal(wantStart.Add(2 * time.Hour)) {
			t.Errorf("end = %v, want start + estimated hours", first.EndTime)
		}
	})

	t.Run("event failures are skipped, not fatal", func(t *testing.T) {
		cal := &mockCalendarClient{failSummaries: map[string]bool{"write report": true}}
		uc := newTestUseCase(t, cal)

		out, err := uc.Export(context.Background(), schedule.ExportInput{Days: exportDays()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.EventCount != 1 || out.Events[0].TaskText != "review PR" {
			t.Errorf("expected only the surviving event, got %+v", out.Events)
		}
	})

	t.Run("no calendar configured", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		if _, err := uc.Export(context.Background(), schedule.ExportInput{Days: exportDays()}); !errors.Is(err, schedule.ErrCalendarUnavailable) {
			t.Errorf("expected ErrCalendarUnavailable, got %v", err)
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		uc := newTestUseCase(t, &mockCalendarClient{})
		if _, err := uc.Export(context.Background(), schedule.ExportInput{}); !errors.Is(err, schedule.ErrNoDaysToExport) {
			t.Errorf("expected ErrNoDaysToExport, got %v", err)
		}
	})
}
