package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/usecase/shared"
)

// NotifyExpiredOutput contains the result of an expiry check.
type NotifyExpiredOutput struct {
	Expired   []domain.Alert // Every pomodoro that has run out
	Delivered []domain.Alert // Alerts shown for the first time by this call
}

// NotifyExpired is the use case behind `pt --notify`.
// It is meant to be polled; the notifier skips alerts it already showed.
// The state is read but never written: an expired pomodoro stays running
// until it is finished explicitly.
type NotifyExpired struct {
	repo      domain.StateRepository
	clock     domain.Clock
	notifier  domain.Notifier
	alarm     domain.AlarmPlayer
	logger    domain.Logger
	presenter *presenter.Presenter
}

// NewNotifyExpired creates a new NotifyExpired use case.
func NewNotifyExpired(repo domain.StateRepository, clock domain.Clock, notifier domain.Notifier, alarm domain.AlarmPlayer, settings domain.PomodoroSettings, logger domain.Logger) *NotifyExpired {
	return &NotifyExpired{
		repo:      repo,
		clock:     clock,
		notifier:  notifier,
		alarm:     alarm,
		logger:    logger,
		presenter: presenter.New(settings.Duration),
	}
}

// Execute announces pomodoros that ran out since the last poll.
// The alarm plays once per call if anything new was announced.
func (uc *NotifyExpired) Execute(ctx context.Context) (*NotifyExpiredOutput, error) {
	s, err := shared.LoadState(uc.repo)
	if err != nil {
		return nil, err
	}

	alerts := uc.presenter.Alerts(s, uc.clock.Now())
	delivered, err := uc.notifier.Notify(ctx, alerts)
	if err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}

	uc.logger.Debug(0, "notify", fmt.Sprintf("poll: %d expired, %d new", len(alerts), len(delivered)))
	for _, a := range delivered {
		uc.logger.Info(a.TaskID, "notify", presenter.AlertTitle(a))
	}

	if len(delivered) > 0 && uc.alarm != nil {
		if err := uc.alarm.Play(ctx); err != nil {
			// The notification already went out; a missing sound is not fatal.
			uc.logger.Warn(0, "alarm", fmt.Sprintf("play alarm: %v", err))
		}
	}

	return &NotifyExpiredOutput{Expired: alerts, Delivered: delivered}, nil
}
