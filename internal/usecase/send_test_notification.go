package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/pt/internal/domain"
)

// Test notification content.
const (
	TestNotificationTitle = "This is a test notification"
	TestNotificationBody  = "Here is some information about this test notification"
)

// SendTestNotificationOutput contains the result of a test notification.
type SendTestNotificationOutput struct {
	Title string
	Body  string
}

// SendTestNotification is the use case for checking the notification setup.
type SendTestNotification struct {
	notifier domain.Notifier
	alarm    domain.AlarmPlayer
}

// NewSendTestNotification creates a new SendTestNotification use case.
func NewSendTestNotification(notifier domain.Notifier, alarm domain.AlarmPlayer) *SendTestNotification {
	return &SendTestNotification{
		notifier: notifier,
		alarm:    alarm,
	}
}

// Execute shows a test notification and plays the alarm.
func (uc *SendTestNotification) Execute(ctx context.Context) (*SendTestNotificationOutput, error) {
	if err := uc.notifier.Send(ctx, TestNotificationTitle, TestNotificationBody); err != nil {
		return nil, fmt.Errorf("send notification: %w", err)
	}
	if uc.alarm != nil {
		if err := uc.alarm.Play(ctx); err != nil {
			return nil, fmt.Errorf("play alarm: %w", err)
		}
	}
	return &SendTestNotificationOutput{Title: TestNotificationTitle, Body: TestNotificationBody}, nil
}
