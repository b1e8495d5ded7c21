package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/schedule"
	"mail-task-planner/internal/task"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Build(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         schedule.UseCase
	taskUC     task.UseCase
	normalizer *dateparse.Normalizer
}

// New creates a new HTTP handler for the schedule domain. The task use case
// supplies the open tasks when the request does not carry explicit IDs.
func New(l log.Logger, uc schedule.UseCase, taskUC task.UseCase, normalizer *dateparse.Normalizer) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		taskUC:     taskUC,
		normalizer: normalizer,
	}
}
