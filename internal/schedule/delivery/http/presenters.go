package http

import (
	"fmt"
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/pkg/dateparse"
	pkgErrors "mail-task-planner/pkg/errors"
)

// maxScheduleTasks caps how many open tasks one schedule build will consider.
const maxScheduleTasks = 200

// --- Request DTOs ---

type buildReq struct {
	WorkHoursPerDay float64 `json:"work_hours_per_day" binding:"omitempty,gt=0,lte=24"`
	StartDate       string  `json:"start_date"         binding:"omitempty,max=32"`
}

func (r buildReq) validate() error { return nil }

type exportReq struct {
	buildReq
	CalendarID string `json:"calendar_id" binding:"omitempty,max=255"`
}

func (r exportReq) validate() error { return nil }

// parseStartDate resolves the requested start date, defaulting to today.
func (h *handler) parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := h.normalizer.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	canonical := h.normalizer.Normalize(raw)
	if canonical == "" {
		return time.Time{}, pkgErrors.NewHTTPError(400, fmt.Sprintf("invalid start_date %q", raw))
	}
	return time.ParseInLocation(dateparse.Canonical, canonical, h.normalizer.Now().Location())
}

// --- Response DTOs ---

type scheduledTaskResp struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	Deadline       string  `json:"deadline,omitempty"`
	StartTime      string  `json:"start_time"`
}

type scheduleDayResp struct {
	Date       string              `json:"date"`
	Tasks      []scheduledTaskResp `json:"tasks"`
	TotalHours float64             `json:"total_hours"`
}

func newScheduleDayResp(day model.ScheduleDay) scheduleDayResp {
	tasks := make([]scheduledTaskResp, len(day.Tasks))
	for i, st := range day.Tasks {
		tasks[i] = scheduledTaskResp{
			ID:             st.Task.ID,
			Text:           st.Task.Text,
			Priority:       string(st.Task.Priority),
			EstimatedHours: st.Task.EstimatedHours,
			Deadline:       st.Task.Deadline,
			StartTime:      st.StartTime,
		}
	}
	return scheduleDayResp{
		Date:       day.Date.Format(dateparse.Canonical),
		Tasks:      tasks,
		TotalHours: day.TotalHours,
	}
}

type buildResp struct {
	Days         []scheduleDayResp `json:"days"`
	TotalHours   float64           `json:"total_hours"`
	TotalDays    int               `json:"total_days"`
	AverageHours float64           `json:"average_hours"`
}

func (h *handler) newBuildResp(out schedule.BuildOutput) buildResp {
	days := make([]scheduleDayResp, len(out.Days))
	for i, day := range out.Days {
		days[i] = newScheduleDayResp(day)
	}
	return buildResp{
		Days:         days,
		TotalHours:   out.TotalHours,
		TotalDays:    out.TotalDays,
		AverageHours: out.AverageHours,
	}
}

type exportedEventResp struct {
	TaskText string `json:"task_text"`
	HTMLLink string `json:"html_link,omitempty"`
}

type exportResp struct {
	Events     []exportedEventResp `json:"events"`
	EventCount int                 `json:"event_count"`
}

func (h *handler) newExportResp(out schedule.ExportOutput) exportResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = exportedEventResp{TaskText: ev.TaskText, HTMLLink: ev.HTMLLink}
	}
	return exportResp{Events: events, EventCount: out.EventCount}
}
