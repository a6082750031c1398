package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveTasks_Execute(t *testing.T) {
	repo := testutil.NewMockStateRepositoryWith(t0, "a", "b")
	uc := NewArchiveTasks(repo, &testutil.MockClock{NowTime: t0}, domain.NopLogger{})

	out, err := uc.Execute(context.Background(), ArchiveTasksInput{IDs: []int{1}})

	require.NoError(t, err)
	assert.Equal(t, domain.EventArchived, out.Outcomes[0].Event)
	assert.True(t, repo.Task(1).Archived)

	out, err = uc.Execute(context.Background(), ArchiveTasksInput{IDs: []int{1}, Unarchive: true})

	require.NoError(t, err)
	assert.Equal(t, domain.EventUnarchived, out.Outcomes[0].Event)
	assert.False(t, repo.Task(1).Archived)
}

func TestArchiveTasks_Execute_Checked(t *testing.T) {
	repo := testutil.NewMockStateRepositoryWith(t0, "a", "b", "c")
	repo.State.Check(1)
	repo.State.Check(3)
	uc := NewArchiveTasks(repo, &testutil.MockClock{NowTime: t0}, domain.NopLogger{})

	out, err := uc.Execute(context.Background(), ArchiveTasksInput{Checked: true})

	require.NoError(t, err)
	require.Len(t, out.Outcomes, 2)
	assert.Equal(t, 1, out.Outcomes[0].TaskID)
	assert.Equal(t, 3, out.Outcomes[1].TaskID)
	assert.Len(t, repo.State.List(false), 1)
}

func TestArchiveTasks_Execute_CheckedNothingToDo(t *testing.T) {
	repo := testutil.NewMockStateRepositoryWith(t0, "a")
	uc := NewArchiveTasks(repo, &testutil.MockClock{NowTime: t0}, domain.NopLogger{})

	out, err := uc.Execute(context.Background(), ArchiveTasksInput{Checked: true})

	require.NoError(t, err)
	assert.Empty(t, out.Outcomes)
	assert.Zero(t, repo.SaveCalls)
}

func TestArchiveTasks_Execute_NoIDs(t *testing.T) {
	uc := NewArchiveTasks(testutil.NewMockStateRepository(), &testutil.MockClock{NowTime: t0}, domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ArchiveTasksInput{})

	assert.ErrorIs(t, err, domain.ErrNoTaskID)
}
