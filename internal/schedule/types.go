package schedule

import (
	"time"

	"mail-task-planner/internal/model"
)

// BuildInput is the input for schedule building.
type BuildInput struct {
	Tasks           []model.Task
	WorkHoursPerDay float64   // <= 0 falls back to the configured default
	StartDate       time.Time // valid calendar date; validated by the caller
}

// BuildOutput is a built schedule plus aggregate totals.
type BuildOutput struct {
	Days         []model.ScheduleDay
	TotalHours   float64
	TotalDays    int
	AverageHours float64 // total hours / total days; 0 for an empty schedule
}

// ExportInput is the input for calendar export.
type ExportInput struct {
	Days       []model.ScheduleDay
	CalendarID string // empty means the primary calendar
}

// ExportedEvent describes one calendar event created during export.
type ExportedEvent struct {
	TaskText string
	HTMLLink string
}

// ExportOutput is the result of calendar export.
type ExportOutput struct {
	Events     []ExportedEvent
	EventCount int
}
