// Package domain contains core business entities and interfaces.
package domain

import "time"

// DefaultPomodoroDuration is the length of one pomodoro.
const DefaultPomodoroDuration = 25 * time.Minute

// Task represents a unit of work tracked by pt.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created            time.Time  `json:"created" yaml:"created"`
	PomodoroStarted    *time.Time `json:"pomodoroStarted,omitempty" yaml:"pomodoro_started,omitempty"` // nil = no pomodoro running
	Description        string     `json:"description" yaml:"description"`
	ID                 int        `json:"id" yaml:"id"`
	AccumulatedSeconds int64      `json:"accumulatedSeconds" yaml:"accumulated_seconds"`
	Checked            bool       `json:"checked" yaml:"checked"`
	Archived           bool       `json:"archived,omitempty" yaml:"archived,omitempty"`
}

// NewTask creates an unchecked, idle task.
func NewTask(id int, description string, created time.Time) *Task {
	return &Task{
		ID:          id,
		Description: description,
		Created:     created,
	}
}

// IsPomodoroActive returns true if a pomodoro is running for the task.
func (t *Task) IsPomodoroActive() bool {
	return t.PomodoroStarted != nil
}

// Elapsed returns the time since the running pomodoro started, never negative.
// Returns 0 if no pomodoro is running.
func (t *Task) Elapsed(now time.Time) time.Duration {
	if t.PomodoroStarted == nil {
		return 0
	}
	elapsed := now.Sub(*t.PomodoroStarted)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns the time left in the running pomodoro, clamped to [0, duration].
// The second return value is false if no pomodoro is running.
func (t *Task) Remaining(now time.Time, duration time.Duration) (time.Duration, bool) {
	if t.PomodoroStarted == nil {
		return 0, false
	}
	remaining := duration - t.Elapsed(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// PomodoroExpired reports whether the running pomodoro has no time left.
// It stays true until the pomodoro is finished.
func (t *Task) PomodoroExpired(now time.Time, duration time.Duration) bool {
	remaining, ok := t.Remaining(now, duration)
	return ok && remaining <= 0
}

// AccumulatedMinutes returns the credited time truncated to whole minutes.
func (t *Task) AccumulatedMinutes() int64 {
	return t.AccumulatedSeconds / 60
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.PomodoroStarted != nil {
		started := *t.PomodoroStarted
		c.PomodoroStarted = &started
	}
	return &c
}
