package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	SourcePath string // Where the current tasks live
	DestPath   string // Where they are copied to
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	DestPath string
	Total    int  // Tasks in the source store
	Skipped  bool // Destination already held the same tasks
}

// MigrateStore copies the whole task list from one store backend to another.
// The source is left untouched; switching [store] backend is up to the user.
type MigrateStore struct {
	source domain.StateRepository
	dest   domain.StateRepository
	logger domain.Logger
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest domain.StateRepository, logger domain.Logger) *MigrateStore {
	return &MigrateStore{source: source, dest: dest, logger: logger}
}

// Execute copies the source state into the destination.
// An empty destination is overwritten; one holding identical tasks is skipped;
// anything else fails with domain.ErrMigrationConflict.
func (uc *MigrateStore) Execute(_ context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if in.SourcePath != "" && in.SourcePath == in.DestPath {
		return nil, fmt.Errorf("%w: %s", domain.ErrSameStore, in.DestPath)
	}

	src, err := shared.LoadState(uc.source)
	if err != nil {
		return nil, err
	}
	dst, err := shared.LoadState(uc.dest)
	if err != nil {
		return nil, err
	}

	out := &MigrateStoreOutput{DestPath: in.DestPath, Total: len(src.Tasks)}
	if len(dst.Tasks) > 0 {
		if statesEqual(src, dst) {
			out.Skipped = true
			return out, nil
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrMigrationConflict, in.DestPath)
	}

	if err := uc.dest.Save(src); err != nil {
		return nil, fmt.Errorf("%w: save destination: %w", domain.ErrStorageUnavailable, err)
	}
	uc.logger.Info(0, "migrate", fmt.Sprintf("copied %d tasks to %s", out.Total, in.DestPath))
	return out, nil
}

// statesEqual compares task lists by value. Times are compared as instants.
func statesEqual(a, b *domain.State) bool {
	if len(a.Tasks) != len(b.Tasks) || a.NextID != b.NextID {
		return false
	}
	for i := range a.Tasks {
		if !tasksEqual(a.Tasks[i], b.Tasks[i]) {
			return false
		}
	}
	return true
}

func tasksEqual(a, b *domain.Task) bool {
	if !a.Created.Equal(b.Created) || !startedEqual(a.PomodoroStarted, b.PomodoroStarted) {
		return false
	}
	x, y := *a, *b
	x.Created, y.Created = time.Time{}, time.Time{}
	x.PomodoroStarted, y.PomodoroStarted = nil, nil
	return x == y
}

func startedEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
