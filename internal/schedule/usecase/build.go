package usecase

import (
	"context"
	"time"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
)

// Build filters, sorts and bin-packs tasks into workdays.
//
// Packing is a single greedy first-fit forward pass: a day closes when the
// next task would overflow it, tasks are never split across days, and the
// pass never backtracks. A task longer than the daily capacity still occupies
// a day of its own.
func (uc *implUseCase) Build(ctx context.Context, input schedule.BuildInput) (schedule.BuildOutput, error) {
	workHours := input.WorkHoursPerDay
	if workHours <= 0 {
		workHours = uc.workHoursPerDay
	}

	// Only open, time-estimated tasks are schedulable.
	tasks := make([]model.Task, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		if !t.Completed && t.EstimatedHours > 0 {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		uc.l.Infof(ctx, "schedule: no schedulable tasks out of %d", len(input.Tasks))
		return schedule.BuildOutput{}, nil
	}

	sorted := uc.sortTasks(tasks)

	currentDate := nextWorkday(input.StartDate)
	dayHours := 0.0
	var dayTasks []model.ScheduledTask
	var days []model.ScheduleDay

	closeDay := func() {
		days = append(days, model.ScheduleDay{
			Date:       currentDate,
			Tasks:      dayTasks,
			TotalHours: dayHours,
		})
		currentDate = nextWorkday(currentDate.AddDate(0, 0, 1))
		dayHours = 0
		dayTasks = nil
	}

	for _, t := range sorted {
		if dayHours+t.EstimatedHours > workHours && len(dayTasks) > 0 {
			closeDay()
		}
		dayTasks = append(dayTasks, model.ScheduledTask{
			Task:      t,
			StartTime: TimeSlot(dayHours),
		})
		dayHours += t.EstimatedHours
	}
	if len(dayTasks) > 0 {
		closeDay()
	}

	var total float64
	for _, d := range days {
		total += d.TotalHours
	}

	out := schedule.BuildOutput{
		Days:       days,
		TotalHours: total,
		TotalDays:  len(days),
	}
	if out.TotalDays > 0 {
		out.AverageHours = total / float64(out.TotalDays)
	}

	uc.l.Infof(ctx, "schedule: packed %d tasks into %d days (%.1fh total)",
		len(sorted), out.TotalDays, total)

	return out, nil
}

// nextWorkday returns d unless it falls on a weekend, in which case it skips
// forward to the next Monday.
func nextWorkday(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
