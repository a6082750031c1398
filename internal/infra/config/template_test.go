package config

import (
	"strings"
	"testing"

	"github.com/runoshun/pt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_IsValidConfig(t *testing.T) {
	content := RenderTemplate(domain.NewDefaultConfig())

	assert.Contains(t, content, `# duration = "25m0s"`)
	assert.Contains(t, content, `# on_running = "keep"`)
	assert.Contains(t, content, `# rounding = "round"`)
	assert.Contains(t, content, `# backend = "json"`)

	cfg, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
}

func TestRenderTemplate_UncommentedRoundTrips(t *testing.T) {
	want := domain.NewDefaultConfig()
	want.Pomodoro.OnRunning = domain.RunningReject
	want.Store.Backend = domain.BackendYAML

	var b strings.Builder
	for _, line := range strings.Split(RenderTemplate(want), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		b.WriteString(line + "\n")
	}

	got, err := Parse([]byte(b.String()))
	require.NoError(t, err)
	assert.Empty(t, got.Warnings)
	assert.Equal(t, want.Pomodoro, got.Pomodoro)
	assert.Equal(t, want.Store, got.Store)
	assert.Equal(t, want.Alarm, got.Alarm)
	assert.Equal(t, want.Log, got.Log)
}
