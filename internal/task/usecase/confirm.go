package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/task"
	"mail-task-planner/internal/task/repository"
)

// ConfirmCandidates validates the user-confirmed candidates and persists each
// as a Task. Invalid candidates are dropped, persistence failures are logged
// and skipped so one bad row never loses the rest of the batch.
func (uc *implUseCase) ConfirmCandidates(ctx context.Context, sc model.Scope, input task.ConfirmInput) (task.ConfirmOutput, error) {
	valid := make([]model.CandidateTask, 0, len(input.Candidates))
	for _, c := range input.Candidates {
		if normalized, ok := uc.validateCandidate(ctx, c); ok {
			valid = append(valid, normalized)
		}
	}
	if len(valid) == 0 {
		return task.ConfirmOutput{}, task.ErrNoCandidates
	}

	createdAt := uc.now()
	tasks := make([]model.Task, 0, len(valid))
	for _, c := range valid {
		created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			ID:             uc.newID(),
			Text:           c.Text,
			Priority:       c.Priority,
			EstimatedHours: c.EstimatedHours,
			Deadline:       c.Deadline,
			CreatedAt:      createdAt,
		})
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.ConfirmCandidates: skip candidate %q: %v", c.Text, err)
			continue
		}
		tasks = append(tasks, created)
	}
	if len(tasks) == 0 {
		uc.l.Errorf(ctx, "task.usecase.ConfirmCandidates: all %d candidates failed to persist", len(valid))
		return task.ConfirmOutput{}, repository.ErrFailedToInsert
	}

	return task.ConfirmOutput{Tasks: tasks, TaskCount: len(tasks)}, nil
}

// validateCandidate cleans a single candidate. It returns false when the
// candidate cannot become a task at all; recoverable problems (bad deadline,
// negative hours, unknown priority) are repaired instead.
func (uc *implUseCase) validateCandidate(ctx context.Context, c model.CandidateTask) (model.CandidateTask, bool) {
	c.Text = strings.TrimSpace(c.Text)
	if utf8.RuneCountInString(c.Text) <= 2 {
		return model.CandidateTask{}, false
	}

	if !c.Priority.Valid() {
		c.Priority = model.PriorityMedium
	}
	if c.EstimatedHours < 0 {
		c.EstimatedHours = 0
	}
	if c.Deadline != "" {
		normalized := uc.normalizer.Normalize(c.Deadline)
		if normalized == "" {
			uc.l.Debugf(ctx, "task.usecase.validateCandidate: drop unparseable deadline %q for %q", c.Deadline, c.Text)
		}
		c.Deadline = normalized
	}
	return c, true
}
