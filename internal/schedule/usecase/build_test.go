package usecase_test

import (
	"context"
	"testing"
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/internal/schedule/usecase"
	"mail-task-planner/pkg/dateparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestUseCase(t *testing.T, calendar usecase.CalendarClient) schedule.UseCase {
	t.Helper()
	normalizer, err := dateparse.NewWithClock("UTC", func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("unexpected error creating normalizer: %v", err)
	}
	return usecase.New(&mockLogger{}, normalizer, calendar, "UTC", 0)
}

// monday is Monday 2025-06-16.
var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func task(text string, p model.Priority, hours float64, deadline string) model.Task {
	return model.Task{ID: text, Text: text, Priority: p, EstimatedHours: hours, Deadline: deadline}
}

func mustBuild(t *testing.T, uc schedule.UseCase, input schedule.BuildInput) schedule.BuildOutput {
	t.Helper()
	out, err := uc.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestBuild(t *testing.T) {
	uc := newTestUseCase(t, nil)

	t.Run("two 4h tasks do not share a 6h day", func(t *testing.T) {
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks: []model.Task{
				task("first", model.PriorityHigh, 4, ""),
				task("second", model.PriorityMedium, 4, ""),
			},
			WorkHoursPerDay: 6,
			StartDate:       monday,
		})
		if out.TotalDays != 2 {
			t.Fatalf("expected 2 days, got %d", out.TotalDays)
		}
		if len(out.Days[0].Tasks) != 1 || out.Days[0].Tasks[0].Task.Text != "first" {
			t.Errorf("day 1 = %+v, want only the high-priority task", out.Days[0].Tasks)
		}
		if len(out.Days[1].Tasks) != 1 || out.Days[1].Tasks[0].Task.Text != "second" {
			t.Errorf("day 2 = %+v, want only the medium task", out.Days[1].Tasks)
		}
		if out.Days[0].TotalHours != 4 || out.Days[1].TotalHours != 4 {
			t.Errorf("day totals = %v/%v, want 4/4", out.Days[0].TotalHours, out.Days[1].TotalHours)
		}
	})

	t.Run("hours are conserved", func(t *testing.T) {
		tasks := []model.Task{
			task("a", model.PriorityHigh, 2, "2025-06-20"),
			task("b", model.PriorityMedium, 3.5, ""),
			task("c", model.PriorityLow, 1, "2025-06-18"),
			task("d", model.PriorityMedium, 5, "2025-06-17"),
			task("e", model.PriorityHigh, 0.5, ""),
		}
		out := mustBuild(t, uc, schedule.BuildInput{Tasks: tasks, StartDate: monday})

		var want float64
		for _, tk := range tasks {
			want += tk.EstimatedHours
		}
		if out.TotalHours != want {
			t.Errorf("TotalHours = %v, want %v", out.TotalHours, want)
		}
		for _, day := range out.Days {
			var sum float64
			for _, st := range day.Tasks {
				sum += st.Task.EstimatedHours
			}
			if sum != day.TotalHours {
				t.Errorf("day %s: TotalHours %v != task sum %v", day.Date.Format("2006-01-02"), day.TotalHours, sum)
			}
		}
	})

	t.Run("no day falls on a weekend", func(t *testing.T) {
		var tasks []model.Task
		for i := 0; i < 12; i++ {
			tasks = append(tasks, task(string(rune('a'+i)), model.PriorityMedium, 5, ""))
		}
		// Friday start forces packing across at least one weekend.
		friday := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		out := mustBuild(t, uc, schedule.BuildInput{Tasks: tasks, StartDate: friday})

		if out.TotalDays != 12 {
			t.Fatalf("expected 12 single-task days, got %d", out.TotalDays)
		}
		for _, day := range out.Days {
			if wd := day.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				t.Errorf("day %s falls on %s", day.Date.Format("2006-01-02"), wd)
			}
		}
	})

	t.Run("weekend start date is skipped forward", func(t *testing.T) {
		saturday := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks:     []model.Task{task("a", model.PriorityMedium, 1, "")},
			StartDate: saturday,
		})
		if out.TotalDays != 1 {
			t.Fatalf("expected 1 day, got %d", out.TotalDays)
		}
		if !out.Days[0].Date.Equal(time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("day = %s, want Monday 2025-06-23", out.Days[0].Date.Format("2006-01-02"))
		}
	})

	t.Run("oversized task gets a day of its own", func(t *testing.T) {
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks: []model.Task{
				task("small", model.PriorityHigh, 1, ""),
				task("huge", model.PriorityMedium, 9, ""),
				task("tail", model.PriorityLow, 2, ""),
			},
			WorkHoursPerDay: 6,
			StartDate:       monday,
		})
		if out.TotalDays != 3 {
			t.Fatalf("expected 3 days, got %d: %+v", out.TotalDays, out.Days)
		}
		if len(out.Days[1].Tasks) != 1 || out.Days[1].Tasks[0].Task.Text != "huge" {
			t.Errorf("oversized task should sit alone on day 2, got %+v", out.Days[1].Tasks)
		}
		if out.Days[1].TotalHours != 9 {
			t.Errorf("day 2 hours = %v, want 9", out.Days[1].TotalHours)
		}
	})

	t.Run("start times follow elapsed hours", func(t *testing.T) {
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks: []model.Task{
				task("a", model.PriorityHigh, 2.5, ""),
				task("b", model.PriorityMedium, 1, ""),
			},
			StartDate: monday,
		})
		if out.TotalDays != 1 {
			t.Fatalf("expected 1 day, got %d", out.TotalDays)
		}
		if got := out.Days[0].Tasks[0].StartTime; got != "09:00" {
			t.Errorf("first start = %q, want 09:00", got)
		}
		if got := out.Days[0].Tasks[1].StartTime; got != "11:30" {
			t.Errorf("second start = %q, want 11:30", got)
		}
	})

	t.Run("completed and zero-hour tasks are excluded", func(t *testing.T) {
		done := task("done", model.PriorityHigh, 3, "")
		done.Completed = true
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks:     []model.Task{done, task("zero", model.PriorityHigh, 0, "")},
			StartDate: monday,
		})
		if out.TotalDays != 0 || len(out.Days) != 0 {
			t.Errorf("expected empty schedule, got %+v", out)
		}
	})

	t.Run("reporting totals", func(t *testing.T) {
		out := mustBuild(t, uc, schedule.BuildInput{
			Tasks: []model.Task{
				task("a", model.PriorityHigh, 4, ""),
				task("b", model.PriorityMedium, 4, ""),
			},
			StartDate: monday,
		})
		if out.TotalHours != 8 || out.TotalDays != 2 || out.AverageHours != 4 {
			t.Errorf("totals = %v/%v/%v, want 8/2/4", out.TotalHours, out.TotalDays, out.AverageHours)
		}
	})
}

func TestBuildSortOrder(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tasks := []model.Task{
		task("low-undated", model.PriorityLow, 1, ""),
		task("med-late", model.PriorityMedium, 1, "2025-07-01"),
		task("med-early", model.PriorityMedium, 1, "2025-06-18"),
		task("med-undated-1", model.PriorityMedium, 1, ""),
		task("high-undated", model.PriorityHigh, 1, ""),
		task("med-undated-2", model.PriorityMedium, 1, ""),
		{ID: "odd", Text: "odd-priority", Priority: "unknown", EstimatedHours: 1, Deadline: ""},
	}
	out := mustBuild(t, uc, schedule.BuildInput{Tasks: tasks, WorkHoursPerDay: 100, StartDate: monday})
	if out.TotalDays != 1 {
		t.Fatalf("expected a single day, got %d", out.TotalDays)
	}

	var order []string
	ranks := make([]int, 0, len(out.Days[0].Tasks))
	for _, st := range out.Days[0].Tasks {
		order = append(order, st.Task.Text)
		ranks = append(ranks, st.Task.Priority.Rank())
	}

	// Priority ranks never increase along the packed order.
	for i := 1; i < len(ranks); i++ {
		if ranks[i] > ranks[i-1] {
			t.Errorf("rank increases at position %d: %v (%v)", i, ranks, order)
		}
	}

	want := []string{
		"high-undated",
		"med-early", "med-late", // dated mediums, earlier deadline first
		"med-undated-1", "med-undated-2", "odd-priority", // stable original order
		"low-undated",
	}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("packed order = %v, want %v", order, want)
		}
	}
}
