package usecase

import (
	"sort"

	"mail-task-planner/internal/model"
)

// sortTasks orders tasks for packing: priority rank descending, then tasks
// with a deadline before tasks without one, then earlier deadline first.
// The sort is stable, so equal tasks keep their original relative order.
func (uc *implUseCase) sortTasks(tasks []model.Task) []model.Task {
	type sortItem struct {
		task     model.Task
		deadline string // normalized once up front
	}

	items := make([]sortItem, len(tasks))
	for i, t := range tasks {
		items[i] = sortItem{task: t, deadline: uc.normalizer.Normalize(t.Deadline)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].task.Priority.Rank(), items[j].task.Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		di, dj := items[i].deadline, items[j].deadline
		if (di == "") != (dj == "") {
			return di != ""
		}
		return di < dj
	})

	sorted := make([]model.Task, len(items))
	for i, it := range items {
		sorted[i] = it.task
	}
	return sorted
}
