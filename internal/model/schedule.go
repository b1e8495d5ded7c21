package model

import "time"

// ScheduledTask is a task placed into a workday with its start time.
type ScheduledTask struct {
	Task      Task
	StartTime string // "HH:MM", 24-hour clock
}

// ScheduleDay is one workday's assignment. Date never falls on a weekend and
// TotalHours always equals the sum of the assigned tasks' estimated hours.
type ScheduleDay struct {
	Date       time.Time
	Tasks      []ScheduledTask
	TotalHours float64
}
