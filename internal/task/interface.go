package task

import (
	"context"

	"mail-task-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ConfirmCandidates turns user-confirmed extraction candidates into
	// persisted tasks.
	ConfirmCandidates(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)

	// List returns persisted tasks, optionally filtered by completion state.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Complete marks a task as completed.
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Delete permanently removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
