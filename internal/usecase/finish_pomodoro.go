package usecase

import (
	"context"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// FinishPomodoroInput contains the parameters for finishing pomodoros.
type FinishPomodoroInput struct {
	IDs []int // Task IDs, processed in order
}

// FinishPomodoro is the use case for stopping pomodoros and crediting their time.
type FinishPomodoro struct {
	repo     domain.StateRepository
	clock    domain.Clock
	logger   domain.Logger
	settings domain.PomodoroSettings
}

// NewFinishPomodoro creates a new FinishPomodoro use case.
func NewFinishPomodoro(repo domain.StateRepository, clock domain.Clock, settings domain.PomodoroSettings, logger domain.Logger) *FinishPomodoro {
	return &FinishPomodoro{
		repo:     repo,
		clock:    clock,
		settings: settings,
		logger:   logger,
	}
}

// Execute finishes the pomodoro of each task.
// Elapsed time is capped at one pomodoro and rounded per the settings.
func (uc *FinishPomodoro) Execute(_ context.Context, in FinishPomodoroInput) (*MutationOutput, error) {
	if len(in.IDs) == 0 {
		return nil, domain.ErrNoTaskID
	}

	now := uc.clock.Now()
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		return forEachID(in.IDs, func(id int) domain.Outcome {
			return s.FinishPomodoro(id, now, uc.settings)
		})
	})
	if err != nil {
		return nil, err
	}

	logOutcomes(uc.logger, "pomodoro", outs)

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
