package domain

import (
	"context"
	"time"
)

// StateRepository persists the whole task list.
type StateRepository interface {
	// Load reads the state. A store that does not exist yet yields an empty state.
	Load() (*State, error)

	// Save replaces the stored state with s.
	Save(s *State) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// Alert describes a pomodoro that ran out.
type Alert struct {
	StartedAt   time.Time
	Description string
	TaskID      int
}

// Notifier delivers desktop notifications for expired pomodoros.
type Notifier interface {
	// Notify announces alerts that were not announced before and returns them.
	// Alerts announced on earlier calls are skipped while they stay expired.
	Notify(ctx context.Context, alerts []Alert) ([]Alert, error)

	// Send shows a single notification without de-duplication.
	Send(ctx context.Context, title, body string) error
}

// AlarmPlayer plays the alarm sound.
type AlarmPlayer interface {
	Play(ctx context.Context) error
}

// CommandExecutor runs external programs.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// Logger records diagnostic messages.
// taskID 0 means the message is not about a specific task.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}
