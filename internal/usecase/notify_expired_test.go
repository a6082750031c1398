package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifyFixture() (*testutil.MockStateRepository, *testutil.MockClock, *testutil.MockNotifier, *testutil.MockAlarmPlayer, *NotifyExpired) {
	repo := testutil.NewMockStateRepositoryWith(t0, "Make tea", "Water plants")
	repo.State.StartPomodoro(1, t0, domain.RunningKeep)
	clock := &testutil.MockClock{NowTime: t0}
	notifier := &testutil.MockNotifier{}
	alarm := &testutil.MockAlarmPlayer{}
	uc := NewNotifyExpired(repo, clock, notifier, alarm, domain.DefaultPomodoroSettings(), domain.NopLogger{})
	return repo, clock, notifier, alarm, uc
}

func TestNotifyExpired_Execute_NothingExpired(t *testing.T) {
	_, clock, notifier, alarm, uc := newNotifyFixture()
	clock.Advance(24 * time.Minute)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, out.Expired)
	assert.Empty(t, out.Delivered)
	assert.Empty(t, notifier.Delivered)
	assert.Zero(t, alarm.Plays)
}

func TestNotifyExpired_Execute_PollsRingOnce(t *testing.T) {
	repo, clock, notifier, alarm, uc := newNotifyFixture()
	clock.Advance(25 * time.Minute)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Delivered, 1)
	assert.Equal(t, 1, out.Delivered[0].TaskID)
	assert.Equal(t, "Make tea", out.Delivered[0].Description)
	assert.Equal(t, 1, alarm.Plays)

	// The next poll still sees the expiry but nothing new is announced.
	clock.Advance(time.Second)
	out, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Expired, 1)
	assert.Empty(t, out.Delivered)
	assert.Equal(t, 1, alarm.Plays)
	assert.Len(t, notifier.Delivered, 1)

	// The pomodoro is never finished by polling.
	assert.True(t, repo.Task(1).IsPomodoroActive())
	assert.Zero(t, repo.SaveCalls)
}

func TestNotifyExpired_Execute_AlarmFailureIsLogged(t *testing.T) {
	repo := testutil.NewMockStateRepositoryWith(t0, "a")
	repo.State.StartPomodoro(1, t0, domain.RunningKeep)
	logger := &testutil.MockLogger{}
	alarm := &testutil.MockAlarmPlayer{PlayErr: errors.New("no sound device")}
	uc := NewNotifyExpired(repo, &testutil.MockClock{NowTime: t0.Add(time.Hour)}, &testutil.MockNotifier{}, alarm, domain.DefaultPomodoroSettings(), logger)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, out.Delivered, 1)
	require.Len(t, logger.Entries, 3)
	assert.Equal(t, "DEBUG", logger.Entries[0].Level)
	assert.Equal(t, "poll: 1 expired, 1 new", logger.Entries[0].Msg)
	assert.Equal(t, "INFO", logger.Entries[1].Level)
	assert.Equal(t, "WARN", logger.Entries[2].Level)
	assert.Contains(t, logger.Entries[2].Msg, "no sound device")
}

func TestNotifyExpired_Execute_NotifierError(t *testing.T) {
	_, clock, notifier, _, uc := newNotifyFixture()
	clock.Advance(time.Hour)
	notifier.NotifyErr = errors.New("dbus unavailable")

	_, err := uc.Execute(context.Background())

	assert.ErrorContains(t, err, "dbus unavailable")
}
