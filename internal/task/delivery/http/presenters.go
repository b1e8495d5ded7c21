package http

import (
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/task"
)

// --- Request DTOs ---

type candidateReq struct {
	Text             string  `json:"text"             binding:"required,min=1,max=1000"`
	Priority         string  `json:"priority"         binding:"omitempty,oneof=high medium low"`
	EstimatedHours   float64 `json:"estimated_hours"  binding:"omitempty,gte=0"`
	Deadline         string  `json:"deadline"         binding:"omitempty,max=32"`
	SourceLineNumber int     `json:"source_line_number"`
}

type confirmReq struct {
	Candidates []candidateReq `json:"candidates" binding:"required,min=1,dive"`
}

func (r confirmReq) validate() error { return nil }

func (r confirmReq) toInput() task.ConfirmInput {
	candidates := make([]model.CandidateTask, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = model.CandidateTask{
			Text:             c.Text,
			Priority:         model.Priority(c.Priority),
			EstimatedHours:   c.EstimatedHours,
			Deadline:         c.Deadline,
			SourceLineNumber: c.SourceLineNumber,
		}
	}
	return task.ConfirmInput{Candidates: candidates}
}

// ---

type listReq struct {
	Completed *bool `form:"completed"`
	Limit     int   `form:"limit"`
	Offset    int   `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Completed      bool      `json:"completed"`
	Priority       string    `json:"priority"`
	EstimatedHours float64   `json:"estimated_hours"`
	Deadline       string    `json:"deadline,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		Text:           t.Text,
		Completed:      t.Completed,
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		Deadline:       t.Deadline,
		CreatedAt:      t.CreatedAt,
	}
}

type confirmResp struct {
	Tasks     []taskResp `json:"tasks"`
	TaskCount int        `json:"task_count"`
}

func (h *handler) newConfirmResp(out task.ConfirmOutput) confirmResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return confirmResp{Tasks: tasks, TaskCount: out.TaskCount}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
