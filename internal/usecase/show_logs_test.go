package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaskLog(t *testing.T, home string, id int, content string) {
	t.Helper()
	path := domain.TaskLogPath(home, id)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestShowLogs_Execute_Success(t *testing.T) {
	home := t.TempDir()
	repo := testutil.NewMockStateRepositoryWith(t0, "a")
	writeTaskLog(t, home, 1, "one\ntwo\nthree\n")
	uc := NewShowLogs(repo, home)

	out, err := uc.Execute(context.Background(), ShowLogsInput{TaskID: 1})

	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree", out.Content)
	assert.Equal(t, domain.TaskLogPath(home, 1), out.LogPath)
}

func TestShowLogs_Execute_LastLines(t *testing.T) {
	home := t.TempDir()
	repo := testutil.NewMockStateRepositoryWith(t0, "a")
	writeTaskLog(t, home, 1, "one\ntwo\nthree\n")
	uc := NewShowLogs(repo, home)

	out, err := uc.Execute(context.Background(), ShowLogsInput{TaskID: 1, Lines: 2})

	require.NoError(t, err)
	assert.Equal(t, "two\nthree", out.Content)
}

func TestShowLogs_Execute_TaskNotFound(t *testing.T) {
	uc := NewShowLogs(testutil.NewMockStateRepository(), t.TempDir())

	_, err := uc.Execute(context.Background(), ShowLogsInput{TaskID: 9})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestShowLogs_Execute_NoLogYet(t *testing.T) {
	repo := testutil.NewMockStateRepositoryWith(t0, "a")
	uc := NewShowLogs(repo, t.TempDir())

	_, err := uc.Execute(context.Background(), ShowLogsInput{TaskID: 1})

	require.ErrorIs(t, err, domain.ErrNoLog)
}
