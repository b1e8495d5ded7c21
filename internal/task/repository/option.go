package repository

import (
	"time"

	"mail-task-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID             string
	Text           string
	Priority       model.Priority
	EstimatedHours float64
	Deadline       string // canonical YYYY-MM-DD, or empty
	CreatedAt      time.Time
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// All filters are AND conditions.
type ListTasksOptions struct {
	Completed *bool
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID        string
	Completed bool
}
