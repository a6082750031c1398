package usecase

import (
	"context"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// StartPomodoroInput contains the parameters for starting pomodoros.
type StartPomodoroInput struct {
	IDs []int // Task IDs, processed in order
}

// StartPomodoro is the use case for starting pomodoros on one or more tasks.
// All pomodoros started by one call share the same start time.
type StartPomodoro struct {
	repo     domain.StateRepository
	clock    domain.Clock
	logger   domain.Logger
	settings domain.PomodoroSettings
}

// NewStartPomodoro creates a new StartPomodoro use case.
func NewStartPomodoro(repo domain.StateRepository, clock domain.Clock, settings domain.PomodoroSettings, logger domain.Logger) *StartPomodoro {
	return &StartPomodoro{
		repo:     repo,
		clock:    clock,
		settings: settings,
		logger:   logger,
	}
}

// Execute starts a pomodoro on each task. Valid IDs start even when others fail.
func (uc *StartPomodoro) Execute(_ context.Context, in StartPomodoroInput) (*MutationOutput, error) {
	if len(in.IDs) == 0 {
		return nil, domain.ErrNoTaskID
	}

	now := uc.clock.Now()
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		return forEachID(in.IDs, func(id int) domain.Outcome {
			return s.StartPomodoro(id, now, uc.settings.OnRunning)
		})
	})
	if err != nil {
		return nil, err
	}

	logOutcomes(uc.logger, "pomodoro", outs)

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
