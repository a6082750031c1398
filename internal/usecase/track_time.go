package usecase

import (
	"context"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// TrackTimeInput contains the parameters for crediting time by hand.
type TrackTimeInput struct {
	TaskID  int // Task to credit
	Minutes int // Whole minutes to add (must be positive)
}

// TrackTime is the use case for adding time worked outside a pomodoro.
type TrackTime struct {
	repo   domain.StateRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewTrackTime creates a new TrackTime use case.
func NewTrackTime(repo domain.StateRepository, clock domain.Clock, logger domain.Logger) *TrackTime {
	return &TrackTime{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute credits the minutes to the task. A running pomodoro is left alone.
func (uc *TrackTime) Execute(_ context.Context, in TrackTimeInput) (*MutationOutput, error) {
	if in.Minutes <= 0 {
		return nil, domain.ErrInvalidMinutes
	}

	now := uc.clock.Now()
	s, outs, err := shared.MutateState(uc.repo, func(s *domain.State) domain.Outcomes {
		return domain.Outcomes{s.Track(in.TaskID, in.Minutes)}
	})
	if err != nil {
		return nil, err
	}

	logOutcomes(uc.logger, "track", outs)

	return &MutationOutput{Now: now, State: s, Outcomes: outs}, nil
}
