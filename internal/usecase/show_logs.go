package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// ShowLogsInput contains the parameters for showing a task's log.
type ShowLogsInput struct {
	TaskID int // Task ID to show logs for
	Lines  int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing a task's log.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for reading the activity log of one task.
type ShowLogs struct {
	repo domain.StateRepository
	home string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(repo domain.StateRepository, home string) *ShowLogs {
	return &ShowLogs{
		repo: repo,
		home: home,
	}
}

// Execute reads the log of an existing task.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	s, err := shared.LoadState(uc.repo)
	if err != nil {
		return nil, err
	}
	if s.Find(in.TaskID) == nil {
		return nil, domain.NewTaskError(in.TaskID, domain.ErrTaskNotFound)
	}

	logPath := domain.TaskLogPath(uc.home, in.TaskID)
	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewTaskError(in.TaskID, domain.ErrNoLog)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	result := strings.TrimRight(string(content), "\n")
	if in.Lines > 0 {
		lines := strings.Split(result, "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n")
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
