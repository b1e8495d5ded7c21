package usecase

import (
	"strings"

	"mail-task-planner/internal/model"
)

// ClassifyPriority maps one line of text to a priority level.
// Levels are checked in fixed table order (high, medium, low) against the
// lower-cased line; the first level with a substring hit wins, medium is the
// default.
func ClassifyPriority(line string) model.Priority {
	lower := strings.ToLower(line)
	for _, entry := range priorityTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.level
			}
		}
	}
	return model.PriorityMedium
}
