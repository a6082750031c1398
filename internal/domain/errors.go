package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoActivePomodoro   = errors.New("no active pomodoro")
	ErrPomodoroActive     = errors.New("pomodoro already active")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidTaskID      = errors.New("invalid task ID")
	ErrNoTaskID           = errors.New("no task ID specified")
	ErrInvalidMinutes     = errors.New("minutes must be positive")
	ErrUnknownBackend     = errors.New("unknown store backend")
	ErrMigrationConflict  = errors.New("destination store already holds different tasks")
	ErrSameStore          = errors.New("source and destination store are the same")
	ErrConfigExists       = errors.New("config file already exists")
	ErrNoLog              = errors.New("no log for task")
)

// TaskError ties a domain error to the task ID it was raised for.
// Batch operations report one TaskError per failed ID.
type TaskError struct {
	Err error
	ID  int
}

// NewTaskError wraps err for the given task ID.
func NewTaskError(id int, err error) *TaskError {
	return &TaskError{ID: id, Err: err}
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d: %v", e.ID, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
