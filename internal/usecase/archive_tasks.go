package usecase

import (
	"context"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// ArchiveTasksInput contains the parameters for archiving tasks.
type ArchiveTasksInput struct {
	IDs       []int // Task IDs, processed in order (ignored when Checked is set)
	Unarchive bool  // Move tasks out of the archive instead
	Checked   bool  // Archive every checked task
}

// ArchiveTasks is the use case for moving tasks in and out of the archive.
type ArchiveTasks struct {
	repo   domain.StateRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewArchiveTasks creates a new ArchiveTasks use case.
func NewArchiveTasks(repo domain.StateRepository, clock domain.Clock, logger domain.Logger) *ArchiveTasks {
	return &ArchiveTasks{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute archives or unarchives the requested tasks.
func (uc *ArchiveTasks) Execute(_ context.Context, in ArchiveTasksInput) (*MutationOutput, error) {
	if !in.Checked && len(in.IDs) == 0 {
		return nil, domain.ErrNoTaskID
	}

	now := uc.clock.Now()
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		if in.Checked {
			return s.ArchiveChecked()
		}
		return forEachID(in.IDs, func(id int) domain.Outcome {
			if in.Unarchive {
				return s.Unarchive(id)
			}
			return s.Archive(id)
		})
	})
	if err != nil {
		return nil, err
	}

	logOutcomes(uc.logger, "archive", outs)

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
