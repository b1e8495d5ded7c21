package usecase

import (
	"context"

	"mail-task-planner/internal/schedule"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/gcalendar"
	pkgLog "mail-task-planner/pkg/log"
)

// CalendarClient is the calendar surface the schedule domain needs.
// *gcalendar.Client satisfies it; tests substitute mocks.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	normalizer *dateparse.Normalizer
	calendar   CalendarClient // nil when calendar export is not configured
	timezone   string

	workHoursPerDay float64 // default daily capacity when the input gives none
}

var _ schedule.UseCase = (*implUseCase)(nil)

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	normalizer *dateparse.Normalizer,
	calendar CalendarClient,
	timezone string,
	workHoursPerDay float64,
) *implUseCase {
	if workHoursPerDay <= 0 {
		workHoursPerDay = DefaultWorkHoursPerDay
	}
	return &implUseCase{
		l:               l,
		normalizer:      normalizer,
		calendar:        calendar,
		timezone:        timezone,
		workHoursPerDay: workHoursPerDay,
	}
}
