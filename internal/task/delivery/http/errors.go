package http

import (
	"mail-task-planner/internal/task"
	pkgErrors "mail-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrNoCandidates:
		return pkgErrors.NewHTTPError(400, "no valid candidates to confirm")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrAlreadyComplete:
		return pkgErrors.NewHTTPError(409, "task is already completed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
