package task

import "mail-task-planner/internal/model"

// ConfirmInput is the input for confirming extraction candidates.
type ConfirmInput struct {
	Candidates []model.CandidateTask
}

// ConfirmOutput is the result of candidate confirmation.
type ConfirmOutput struct {
	Tasks     []model.Task
	TaskCount int
}

// ListInput holds filter and pagination parameters for listing tasks.
type ListInput struct {
	Completed *bool // nil means both open and completed tasks
	Limit     int
	Offset    int
}

// ListOutput is a page of tasks plus the unpaginated total.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}
