package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/infra/filestore"
	"github.com/runoshun/pt/internal/infra/sqlitestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(domain.HomeEnvVar, dir)

		home, err := ResolveHome()
		require.NoError(t, err)
		assert.Equal(t, dir, home)
	})

	t.Run("default under user home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(domain.HomeEnvVar, "")
		t.Setenv("HOME", dir)

		home, err := ResolveHome()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".pt"), home)
	})
}

func TestNew_Defaults(t *testing.T) {
	home := t.TempDir()

	c, err := New(home)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, filepath.Join(home, "tasks.json"), c.Config.StatePath)
	assert.Equal(t, filepath.Join(home, "alarm.mp3"), c.Config.AlarmPath)
	assert.IsType(t, &filestore.Store{}, c.Tasks)
	assert.Equal(t, domain.DefaultPomodoroSettings(), c.Settings())
	assert.Empty(t, c.AppConfig.Warnings)
}

func TestNew_SQLiteBackend(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, domain.ConfigFileName), []byte("[store]\nbackend = \"sqlite\"\n"), 0o600))

	c, err := New(home)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.IsType(t, &sqlitestore.Store{}, c.Tasks)
	assert.Equal(t, filepath.Join(home, "tasks.db"), c.Config.StatePath)
}

func TestNew_InvalidLogLevelWarns(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, domain.ConfigFileName), []byte("[log]\nlevel = \"loud\"\n"), 0o600))

	c, err := New(home)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	require.Len(t, c.AppConfig.Warnings, 1)
	assert.Contains(t, c.AppConfig.Warnings[0], "level")
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := OpenStore("postgres", "x")
	require.ErrorIs(t, err, domain.ErrUnknownBackend)
}
