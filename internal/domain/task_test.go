package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func startedTask(start time.Time) *Task {
	task := NewTask(1, "Make tea", t0)
	task.PomodoroStarted = &start
	return task
}

func TestTask_Remaining(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		want   time.Duration
		wantOK bool
	}{
		{"just started", t0, 25 * time.Minute, true},
		{"one second in", t0.Add(time.Second), 24*time.Minute + 59*time.Second, true},
		{"exactly expired", t0.Add(25 * time.Minute), 0, true},
		{"long overdue", t0.Add(3 * time.Hour), 0, true},
		{"clock behind start", t0.Add(-time.Minute), 25 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := startedTask(t0).Remaining(tt.now, DefaultPomodoroDuration)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_Remaining_Idle(t *testing.T) {
	task := NewTask(1, "Idle", t0)

	got, ok := task.Remaining(t0, DefaultPomodoroDuration)

	assert.False(t, ok)
	assert.Zero(t, got)
	assert.False(t, task.PomodoroExpired(t0.Add(time.Hour), DefaultPomodoroDuration))
}

func TestTask_Remaining_MonotonicallyNonIncreasing(t *testing.T) {
	task := startedTask(t0)
	prev := DefaultPomodoroDuration

	for s := 0; s <= 30*60; s += 7 {
		got, _ := task.Remaining(t0.Add(time.Duration(s)*time.Second), DefaultPomodoroDuration)
		assert.LessOrEqual(t, got, prev, "at %ds", s)
		assert.GreaterOrEqual(t, got, time.Duration(0))
		prev = got
	}
}

func TestTask_PomodoroExpired(t *testing.T) {
	task := startedTask(t0)

	assert.False(t, task.PomodoroExpired(t0.Add(24*time.Minute), DefaultPomodoroDuration))
	assert.True(t, task.PomodoroExpired(t0.Add(25*time.Minute), DefaultPomodoroDuration))
	// Stays expired on every later poll.
	assert.True(t, task.PomodoroExpired(t0.Add(26*time.Minute), DefaultPomodoroDuration))
}

func TestTask_AccumulatedMinutes(t *testing.T) {
	task := NewTask(1, "x", t0)
	task.AccumulatedSeconds = 119

	assert.Equal(t, int64(1), task.AccumulatedMinutes())
}

func TestTask_Clone(t *testing.T) {
	task := startedTask(t0)

	c := task.Clone()
	*c.PomodoroStarted = t0.Add(time.Hour)
	c.Description = "changed"

	assert.Equal(t, t0, *task.PomodoroStarted)
	assert.Equal(t, "Make tea", task.Description)
}
