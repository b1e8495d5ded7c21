package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the numeric rank used for schedule ordering.
// Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// CandidateTask is an unconfirmed task extracted from free text, awaiting
// user confirmation. Transient; never persisted directly.
type CandidateTask struct {
	Text             string   // trimmed, always longer than 2 runes
	Priority         Priority
	EstimatedHours   float64  // >= 0
	Deadline         string   // canonical YYYY-MM-DD, or empty
	SourceLineNumber int      // 1-based line index; 0 for the subject line
}

// Task is a confirmed, persisted task. The scheduling core only reads it.
type Task struct {
	ID             string
	Text           string
	Completed      bool
	Priority       Priority
	EstimatedHours float64
	Deadline       string // canonical YYYY-MM-DD, or empty
	CreatedAt      time.Time
}
