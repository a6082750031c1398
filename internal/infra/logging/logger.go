// Package logging writes pt's activity log.
// Every entry goes to <home>/logs/pt.log; entries about a task are also
// appended to <home>/logs/task-N.log so one task's history can be read alone.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/pt/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger appends formatted entries to the log files under the home directory.
// Files are opened lazily and kept open until Close.
// Fields are ordered to minimize memory padding.
type Logger struct {
	now        func() time.Time
	globalFile *os.File
	taskFiles  map[int]*os.File
	home       string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a Logger writing under home.
// If home is empty, logging is disabled.
func New(home string, level slog.Level) *Logger {
	return &Logger{
		home:      home,
		level:     level,
		now:       time.Now,
		taskFiles: make(map[int]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
// The second result is false for unknown names, which map to info.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// openAppend opens path for appending, creating the logs directory first.
// Callers hold l.mu.
func (l *Logger) openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *Logger) globalWriter() (io.Writer, error) {
	if l.globalFile == nil {
		f, err := l.openAppend(domain.GlobalLogPath(l.home))
		if err != nil {
			return nil, err
		}
		l.globalFile = f
	}
	return l.globalFile, nil
}

func (l *Logger) taskWriter(taskID int) (io.Writer, error) {
	if f, ok := l.taskFiles[taskID]; ok {
		return f, nil
	}
	f, err := l.openAppend(domain.TaskLogPath(l.home, taskID))
	if err != nil {
		return nil, err
	}
	l.taskFiles[taskID] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.taskFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.taskFiles, id)
	}
	return lastErr
}

// formatLog formats one entry.
// Format: [2024-03-01 09:00:00] [INFO] [task-1] [pomodoro] message
func formatLog(t time.Time, level slog.Level, taskID int, category, msg string) string {
	taskStr := "global"
	if taskID > 0 {
		taskStr = fmt.Sprintf("task-%d", taskID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		level.String(),
		taskStr,
		category,
		msg,
	)
}

// log writes an entry to the global log and, for taskID > 0, to the task log.
// Write failures are dropped: logging never fails a command.
func (l *Logger) log(level slog.Level, taskID int, category, msg string) {
	if l.home == "" || level < l.level {
		return
	}

	entry := formatLog(l.now(), level, taskID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if w, err := l.globalWriter(); err == nil {
		_, _ = io.WriteString(w, entry)
	}
	if taskID > 0 {
		if w, err := l.taskWriter(taskID); err == nil {
			_, _ = io.WriteString(w, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(taskID int, category, msg string) {
	l.log(slog.LevelInfo, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID int, category, msg string) {
	l.log(slog.LevelDebug, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID int, category, msg string) {
	l.log(slog.LevelWarn, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID int, category, msg string) {
	l.log(slog.LevelError, taskID, category, msg)
}
