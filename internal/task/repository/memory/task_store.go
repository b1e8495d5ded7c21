package memory

import (
	"context"
	"sync"

	"mail-task-planner/internal/model"
	repo "mail-task-planner/internal/task/repository"
)

// implRepository is an in-memory Repository used when no database is
// configured and in tests. Insertion order is preserved for listing.
type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string
}

// New creates an empty in-memory task repository.
func New() repo.Repository {
	return &implRepository{tasks: make(map[string]model.Task)}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.Task{
		ID:             opt.ID,
		Text:           opt.Text,
		Completed:      false,
		Priority:       opt.Priority,
		EstimatedHours: opt.EstimatedHours,
		Deadline:       opt.Deadline,
		CreatedAt:      opt.CreatedAt,
	}
	if _, exists := r.tasks[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tasks[id], nil // zero value when absent, matching the postgre contract
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []model.Task
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		filtered = append(filtered, t)
	}
	total := len(filtered)

	offset := opt.Offset
	if offset > total {
		offset = total
	}
	filtered = filtered[offset:]
	if opt.Limit > 0 && opt.Limit < len(filtered) {
		filtered = filtered[:opt.Limit]
	}
	return filtered, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Completed = opt.Completed
	r.tasks[opt.ID] = t
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return nil
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
