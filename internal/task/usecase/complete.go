package usecase

import (
	"context"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/task"
	"mail-task-planner/internal/task/repository"
)

func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Complete: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if existing.Completed {
		return model.Task{}, task.ErrAlreadyComplete
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: id, Completed: true})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Complete: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}
	return nil
}
