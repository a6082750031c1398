// Package presenter turns task state into the text pt prints.
// Everything here is a pure function of its arguments.
package presenter

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/pt/internal/domain"
)

// NoTasks is printed when a listing is empty.
const NoTasks = "No tasks found."

// Presenter renders tasks for a fixed pomodoro duration.
type Presenter struct {
	duration time.Duration
}

// New creates a Presenter. A non-positive duration falls back to the default.
func New(duration time.Duration) *Presenter {
	if duration <= 0 {
		duration = domain.DefaultPomodoroDuration
	}
	return &Presenter{duration: duration}
}

// Line renders one task: "NNN [x]: description (time)".
func (p *Presenter) Line(t *domain.Task, now time.Time) string {
	return fmt.Sprintf("%03d [%s]: %s (%s)", t.ID, CheckMark(t.Checked), t.Description, p.Time(t, now))
}

// Lines renders tasks in ascending ID order, or NoTasks if there are none.
func (p *Presenter) Lines(tasks []*domain.Task, now time.Time) []string {
	if len(tasks) == 0 {
		return []string{NoTasks}
	}
	lines := make([]string, 0, len(tasks))
	for _, t := range sortedByID(tasks) {
		lines = append(lines, p.Line(t, now))
	}
	return lines
}

// Time renders the countdown of a running pomodoro, or the accumulated total.
func (p *Presenter) Time(t *domain.Task, now time.Time) string {
	if remaining, ok := t.Remaining(now, p.duration); ok {
		return FormatRemaining(remaining)
	}
	return FormatTotal(t.AccumulatedMinutes())
}

// Expired reports whether the task's pomodoro has run out.
func (p *Presenter) Expired(t *domain.Task, now time.Time) bool {
	return t.PomodoroExpired(now, p.duration)
}

// ExpiredTasks returns every task whose pomodoro has run out, in ID order.
// The same tasks are returned on each call until their pomodoros are finished.
func (p *Presenter) ExpiredTasks(s *domain.State, now time.Time) []*domain.Task {
	return s.Expired(now, p.duration)
}

// Alerts builds notifier alerts for the expired tasks.
func (p *Presenter) Alerts(s *domain.State, now time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, t := range p.ExpiredTasks(s, now) {
		alerts = append(alerts, domain.Alert{
			TaskID:      t.ID,
			Description: t.Description,
			StartedAt:   *t.PomodoroStarted,
		})
	}
	return alerts
}

// CheckMark returns the glyph between the brackets.
func CheckMark(checked bool) string {
	if checked {
		return "x"
	}
	return " "
}

// FormatRemaining renders a countdown as "24m 59s", truncated to whole seconds.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
}

// FormatTotal renders an accumulated total as "Σ12 min".
func FormatTotal(minutes int64) string {
	return fmt.Sprintf("Σ%d min", minutes)
}

// AlertTitle is the notification title for an expired pomodoro.
func AlertTitle(a domain.Alert) string {
	return fmt.Sprintf("Pomodoro finished for task %d.", a.TaskID)
}

// AlertLine is the console line printed for a delivered alert.
func AlertLine(a domain.Alert) string {
	return AlertTitle(a) + ": " + a.Description
}

// Message renders the line reported for one outcome.
func Message(o domain.Outcome) string {
	if o.Err != nil {
		return ErrorMessage(o.TaskID, o.Err)
	}
	switch o.Event {
	case domain.EventAdded:
		return fmt.Sprintf("Task %d added.", o.TaskID)
	case domain.EventChecked:
		return fmt.Sprintf("Task %d checked.", o.TaskID)
	case domain.EventUnchecked:
		return fmt.Sprintf("Task %d unchecked.", o.TaskID)
	case domain.EventArchived:
		return fmt.Sprintf("Task %d moved to archive.", o.TaskID)
	case domain.EventUnarchived:
		return fmt.Sprintf("Task %d moved out of archive.", o.TaskID)
	case domain.EventPomodoroStarted:
		return fmt.Sprintf("Pomodoro started for task %d.", o.TaskID)
	case domain.EventPomodoroAlreadyActive:
		return fmt.Sprintf("Pomodoro already active for task %d.", o.TaskID)
	case domain.EventPomodoroRestarted:
		return fmt.Sprintf("Pomodoro restarted for task %d.", o.TaskID)
	case domain.EventPomodoroFinished:
		return fmt.Sprintf("Pomodoro finished for task %d.", o.TaskID)
	case domain.EventTracked:
		return fmt.Sprintf("Tracked %d minutes for task %d.", int64(o.Amount/time.Minute), o.TaskID)
	default:
		return ""
	}
}

// ErrorMessage renders a per-task failure.
func ErrorMessage(id int, err error) string {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return fmt.Sprintf("Task %d not found.", id)
	case errors.Is(err, domain.ErrNoActivePomodoro):
		return fmt.Sprintf("No pomodoro active for task %d.", id)
	case errors.Is(err, domain.ErrPomodoroActive):
		return fmt.Sprintf("Pomodoro already active for task %d.", id)
	case errors.Is(err, domain.ErrInvalidMinutes):
		return fmt.Sprintf("Invalid time for task %d.", id)
	case errors.Is(err, domain.ErrNoLog):
		return fmt.Sprintf("No log for task %d.", id)
	default:
		return fmt.Sprintf("Task %d: %v", id, err)
	}
}

func sortedByID(tasks []*domain.Task) []*domain.Task {
	sorted := slices.Clone(tasks)
	slices.SortFunc(sorted, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})
	return sorted
}
