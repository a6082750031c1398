package logging

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		ok       bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"WARN", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"loud", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func newTestLogger(t *testing.T, level slog.Level) (*Logger, string) {
	t.Helper()
	home := t.TempDir()
	logger := New(home, level)
	logger.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { _ = logger.Close() })
	return logger, home
}

func TestLogger_TaskEntryGoesToBothFiles(t *testing.T) {
	logger, home := newTestLogger(t, slog.LevelInfo)

	logger.Info(1, "pomodoro", "started")

	want := "[2024-03-01 09:00:00] [INFO] [task-1] [pomodoro] started\n"
	global, err := os.ReadFile(domain.GlobalLogPath(home))
	require.NoError(t, err)
	assert.Equal(t, want, string(global))

	task, err := os.ReadFile(domain.TaskLogPath(home, 1))
	require.NoError(t, err)
	assert.Equal(t, want, string(task))
}

func TestLogger_GlobalEntryOnly(t *testing.T) {
	logger, home := newTestLogger(t, slog.LevelInfo)

	logger.Warn(0, "notify", "alarm failed")

	content, err := os.ReadFile(domain.GlobalLogPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN] [global] [notify] alarm failed")

	_, err = os.Stat(domain.TaskLogPath(home, 0))
	assert.True(t, os.IsNotExist(err))
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, home := newTestLogger(t, slog.LevelWarn)

	logger.Debug(2, "task", "debug message")
	logger.Info(2, "task", "info message")
	logger.Error(2, "task", "error message")

	content, err := os.ReadFile(domain.TaskLogPath(home, 2))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "[ERROR]")
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	logger, home := newTestLogger(t, slog.LevelInfo)
	logger.Info(0, "task", "first")
	require.NoError(t, logger.Close())

	second := New(home, slog.LevelInfo)
	defer func() { _ = second.Close() }()
	second.Info(0, "task", "second")

	content, err := os.ReadFile(domain.GlobalLogPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}

func TestLogger_DisabledWithoutHome(t *testing.T) {
	logger := New("", slog.LevelDebug)

	assert.NotPanics(t, func() {
		logger.Info(1, "task", "dropped")
	})
	assert.NoError(t, logger.Close())
}
