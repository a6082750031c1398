package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(home, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_AllSections(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[pomodoro]
duration = "50m"
on_running = "restart"
rounding = "ceil"

[store]
backend = "sqlite"

[notify]
command = "my-notify"

[alarm]
command = "mpv"
file = "/usr/share/sounds/bell.oga"

[log]
level = "debug"
`)

	cfg, err := NewLoader(home).Load()
	require.NoError(t, err)

	assert.Equal(t, 50*time.Minute, cfg.Pomodoro.Duration)
	assert.Equal(t, domain.RunningRestart, cfg.Pomodoro.OnRunning)
	assert.Equal(t, domain.RoundCeil, cfg.Pomodoro.Rounding)
	assert.Equal(t, domain.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, "tasks.db"), cfg.StatePath(home))
	assert.Equal(t, "my-notify", cfg.Notify.Command)
	assert.Equal(t, "mpv", cfg.Alarm.Command)
	assert.Equal(t, "/usr/share/sounds/bell.oga", cfg.AlarmPath(home))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_DurationInMinutes(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[pomodoro]\nduration = 15\n")

	cfg, err := NewLoader(home).Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Pomodoro.Duration)
}

func TestLoader_Load_InvalidValuesKeepDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[pomodoro]
duration = "-5m"
on_running = "sometimes"
rounding = "banker"

[store]
backend = "postgres"
`)

	cfg, err := NewLoader(home).Load()
	require.NoError(t, err)

	defaults := domain.NewDefaultConfig()
	assert.Equal(t, defaults.Pomodoro, cfg.Pomodoro)
	assert.Equal(t, defaults.Store, cfg.Store)
	require.Len(t, cfg.Warnings, 4)
	assert.Contains(t, cfg.Warnings[0], "duration")
	assert.Contains(t, cfg.Warnings[1], "on_running")
	assert.Contains(t, cfg.Warnings[2], "rounding")
	assert.Contains(t, cfg.Warnings[3], "backend")
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[pomodoro]
colour = "red"

[workers]
default = "claude"
`)

	cfg, err := NewLoader(home).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [pomodoro]: colour",
		"unknown section: workers",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[pomodoro\nduration = ")

	_, err := NewLoader(home).Load()

	assert.Error(t, err)
}
