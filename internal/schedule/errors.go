package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrCalendarUnavailable = errors.New("calendar client is not configured")
	ErrNoDaysToExport      = errors.New("schedule has no days to export")
)
