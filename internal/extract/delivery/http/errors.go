package http

import (
	pkgErrors "mail-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
