package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultPomodoroDuration, cfg.Pomodoro.Duration)
	assert.Equal(t, RunningKeep, cfg.Pomodoro.OnRunning)
	assert.Equal(t, RoundNearest, cfg.Pomodoro.Rounding)
	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_Paths(t *testing.T) {
	home := filepath.Join("/home", "me", ".pt")
	cfg := NewDefaultConfig()

	assert.Equal(t, filepath.Join(home, "tasks.json"), cfg.StatePath(home))
	assert.Equal(t, filepath.Join(home, "alarm.mp3"), cfg.AlarmPath(home))

	cfg.Store.Backend = BackendSQLite
	assert.Equal(t, filepath.Join(home, "tasks.db"), cfg.StatePath(home))

	cfg.Store.Path = "/var/tmp/pt.yaml"
	assert.Equal(t, "/var/tmp/pt.yaml", cfg.StatePath(home))

	cfg.Alarm.File = "sounds/bell.wav"
	assert.Equal(t, filepath.Join(home, "sounds", "bell.wav"), cfg.AlarmPath(home))

	assert.Equal(t, filepath.Join(home, "logs", "task-3.log"), TaskLogPath(home, 3))
	assert.Equal(t, filepath.Join(home, "logs", "pt.log"), GlobalLogPath(home))
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("yaml")
	require.NoError(t, err)
	assert.Equal(t, BackendYAML, b)
	assert.Equal(t, "tasks.yaml", b.FileName())

	_, err = ParseBackend("mysql")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
