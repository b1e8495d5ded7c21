package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNoCandidates    = errors.New("no valid candidates to confirm")
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlreadyComplete = errors.New("task is already completed")
)
