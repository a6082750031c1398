package domain

import (
	"errors"
	"time"
)

// Event identifies what a mutation did to a task.
type Event int

// Events reported by State mutations.
const (
	EventNone Event = iota
	EventAdded
	EventChecked
	EventUnchecked
	EventArchived
	EventUnarchived
	EventPomodoroStarted
	EventPomodoroAlreadyActive
	EventPomodoroRestarted
	EventPomodoroFinished
	EventTracked
)

// Changed returns true if the event modified the task.
func (e Event) Changed() bool {
	switch e {
	case EventNone, EventPomodoroAlreadyActive:
		return false
	}
	return true
}

// Outcome is the result of applying one operation to one task.
// Fields are ordered to minimize memory padding.
type Outcome struct {
	Err    error         // Non-nil if the operation failed for this task
	Amount time.Duration // Credited time for finish and track
	TaskID int
	Event  Event
}

// Failed returns true if the operation failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Outcomes is the ordered result of a batch operation.
type Outcomes []Outcome

// Changed returns true if any outcome modified state.
func (outs Outcomes) Changed() bool {
	for _, o := range outs {
		if o.Err == nil && o.Event.Changed() {
			return true
		}
	}
	return false
}

// Err joins the errors of all failed outcomes. Returns nil if none failed.
func (outs Outcomes) Err() error {
	var errs []error
	for _, o := range outs {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
