package usecase

import (
	"context"
	"fmt"
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/pkg/gcalendar"
)

// Export creates one calendar event per scheduled task. Event creation
// failures are logged and skipped so a flaky calendar never loses the rest of
// the schedule.
func (uc *implUseCase) Export(ctx context.Context, input schedule.ExportInput) (schedule.ExportOutput, error) {
	if uc.calendar == nil {
		return schedule.ExportOutput{}, schedule.ErrCalendarUnavailable
	}
	if len(input.Days) == 0 {
		return schedule.ExportOutput{}, schedule.ErrNoDaysToExport
	}

	var events []schedule.ExportedEvent
	for _, day := range input.Days {
		for _, st := range day.Tasks {
			start, err := slotStart(day.Date, st.StartTime)
			if err != nil {
				uc.l.Warnf(ctx, "schedule export: bad start time %q for %q: %v", st.StartTime, st.Task.Text, err)
				continue
			}
			end := start.Add(time.Duration(st.Task.EstimatedHours * float64(time.Hour)))

			created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
				CalendarID:  input.CalendarID,
				Summary:     st.Task.Text,
				Description: eventDescription(st.Task),
				StartTime:   start,
				EndTime:     end,
				Timezone:    uc.timezone,
			})
			if err != nil {
				uc.l.Warnf(ctx, "schedule export: event creation failed for %q (non-fatal): %v", st.Task.Text, err)
				continue
			}

			events = append(events, schedule.ExportedEvent{
				TaskText: st.Task.Text,
				HTMLLink: created.HTMLLink,
			})
		}
	}

	uc.l.Infof(ctx, "schedule export: created %d events", len(events))
	return schedule.ExportOutput{Events: events, EventCount: len(events)}, nil
}

// slotStart combines a schedule day with its "HH:MM" slot.
func slotStart(day time.Time, slot string) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(slot, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

func eventDescription(t model.Task) string {
	desc := fmt.Sprintf("Priority: %s\nEstimated: %.1fh", t.Priority, t.EstimatedHours)
	if t.Deadline != "" {
		desc += fmt.Sprintf("\nDeadline: %s", t.Deadline)
	}
	return desc
}
