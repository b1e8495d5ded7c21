package usecase

import (
	"time"

	"github.com/google/uuid"

	"mail-task-planner/internal/task"
	"mail-task-planner/internal/task/repository"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	normalizer *dateparse.Normalizer
	newID      func() string
	now        func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates the task use case with production ID and clock sources.
func New(l log.Logger, repo repository.Repository, normalizer *dateparse.Normalizer) task.UseCase {
	return NewWithGenerators(l, repo, normalizer, uuid.NewString, time.Now)
}

// NewWithGenerators allows injecting the ID generator and clock.
func NewWithGenerators(l log.Logger, repo repository.Repository, normalizer *dateparse.Normalizer, newID func() string, now func() time.Time) task.UseCase {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		normalizer: normalizer,
		newID:      newID,
		now:        now,
	}
}
