package usecase

import (
	"context"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// CheckTasksInput contains the parameters for checking or unchecking tasks.
type CheckTasksInput struct {
	IDs     []int // Task IDs, processed in order
	Uncheck bool  // Clear the done mark instead of setting it
}

// CheckTasks is the use case for marking tasks done (or not done).
type CheckTasks struct {
	repo   domain.StateRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCheckTasks creates a new CheckTasks use case.
func NewCheckTasks(repo domain.StateRepository, clock domain.Clock, logger domain.Logger) *CheckTasks {
	return &CheckTasks{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute checks each task. Unknown IDs fail individually.
func (uc *CheckTasks) Execute(_ context.Context, in CheckTasksInput) (*MutationOutput, error) {
	if len(in.IDs) == 0 {
		return nil, domain.ErrNoTaskID
	}

	now := uc.clock.Now()
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		return forEachID(in.IDs, func(id int) domain.Outcome {
			if in.Uncheck {
				return s.Uncheck(id)
			}
			return s.Check(id)
		})
	})
	if err != nil {
		return nil, err
	}

	logOutcomes(uc.logger, "task", outs)

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
