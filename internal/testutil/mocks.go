// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/pt/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// Ensure MockStateRepository implements domain.StateRepository.
var _ domain.StateRepository = (*MockStateRepository)(nil)

// MockStateRepository is a test double for domain.StateRepository.
// It hands out copies so that unsaved mutations are not visible to later loads.
// Fields are ordered to minimize memory padding.
type MockStateRepository struct {
	State     *domain.State
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockStateRepository creates a repository holding an empty state.
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{State: domain.NewState()}
}

// NewMockStateRepositoryWith creates a repository holding tasks with the given descriptions.
func NewMockStateRepositoryWith(created time.Time, descriptions ...string) *MockStateRepository {
	s := domain.NewState()
	for _, d := range descriptions {
		s.Add(d, created)
	}
	return &MockStateRepository{State: s}
}

// Load returns a copy of the stored state.
func (m *MockStateRepository) Load() (*domain.State, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.State.Clone(), nil
}

// Save stores a copy of s.
func (m *MockStateRepository) Save(s *domain.State) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = s.Clone()
	return nil
}

// Task returns the stored task with the given ID, or nil.
func (m *MockStateRepository) Task(id int) *domain.Task {
	return m.State.Find(id)
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(taskID int, category, msg string) { m.add("INFO", taskID, category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.add("DEBUG", taskID, category, msg) }

// Warn records a warning.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.add("WARN", taskID, category, msg) }

// Error records an error.
func (m *MockLogger) Error(taskID int, category, msg string) { m.add("ERROR", taskID, category, msg) }

// Ensure MockNotifier implements domain.Notifier.
var _ domain.Notifier = (*MockNotifier)(nil)

// MockNotifier is a test double for domain.Notifier with in-memory de-duplication.
// Fields are ordered to minimize memory padding.
type MockNotifier struct {
	NotifyErr error
	SendErr   error
	seen      map[string]bool
	Delivered []domain.Alert
	Sent      []string
}

// Notify delivers alerts that were not delivered before.
func (m *MockNotifier) Notify(_ context.Context, alerts []domain.Alert) ([]domain.Alert, error) {
	if m.NotifyErr != nil {
		return nil, m.NotifyErr
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	var fresh []domain.Alert
	for _, a := range alerts {
		key := fmt.Sprintf("%d@%d", a.TaskID, a.StartedAt.Unix())
		if m.seen[key] {
			continue
		}
		m.seen[key] = true
		fresh = append(fresh, a)
	}
	m.Delivered = append(m.Delivered, fresh...)
	return fresh, nil
}

// Send records a notification.
func (m *MockNotifier) Send(_ context.Context, title, body string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, title+": "+body)
	return nil
}

// Ensure MockAlarmPlayer implements domain.AlarmPlayer.
var _ domain.AlarmPlayer = (*MockAlarmPlayer)(nil)

// MockAlarmPlayer counts alarm plays.
type MockAlarmPlayer struct {
	PlayErr error
	Plays   int
}

// Play records a play.
func (m *MockAlarmPlayer) Play(_ context.Context) error {
	m.Plays++
	return m.PlayErr
}

// Ensure MockExecutor implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*MockExecutor)(nil)

// MockExecutor records executed commands.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	ExecuteErr error
	Output     []byte
	Commands   []*domain.ExecCommand
}

// Execute records the command and returns the configured output.
func (m *MockExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	if m.ExecuteErr != nil {
		return m.Output, m.ExecuteErr
	}
	return m.Output, nil
}
