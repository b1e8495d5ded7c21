package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/extract"
	"mail-task-planner/pkg/log"
)

// Handler is the public interface for the extract HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extract.UseCase
}

// New creates a new HTTP handler for the extract domain.
func New(l log.Logger, uc extract.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
