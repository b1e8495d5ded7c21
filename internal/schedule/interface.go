package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Build sorts schedulable tasks and bin-packs them into workdays.
	// An empty or fully-filtered task list yields an empty schedule, not an
	// error; callers decide how to surface that.
	Build(ctx context.Context, input BuildInput) (BuildOutput, error)

	// Export pushes a built schedule to Google Calendar, one event per
	// scheduled task. Individual event failures are skipped, not fatal.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
