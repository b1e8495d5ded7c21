package http

import (
	stderrors "errors"

	"mail-task-planner/internal/schedule"
	pkgErrors "mail-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if stderrors.As(err, &httpErr) {
		return err
	}

	switch err {
	case schedule.ErrCalendarUnavailable:
		return pkgErrors.NewHTTPError(503, "calendar export is not configured")
	case schedule.ErrNoDaysToExport:
		return pkgErrors.NewHTTPError(400, "schedule is empty, nothing to export")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
