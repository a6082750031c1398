package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/runoshun/pt/internal/domain"
)

//go:embed config_template.toml
var configTemplateContent string

type templateData struct {
	Duration  string
	OnRunning string
	Rounding  string
	Backend   string
	AlarmFile string
	LogLevel  string
}

// RenderTemplate renders a commented config file showing the values of cfg.
func RenderTemplate(cfg *domain.Config) string {
	data := templateData{
		Duration:  cfg.Pomodoro.Duration.String(),
		OnRunning: string(cfg.Pomodoro.OnRunning),
		Rounding:  string(cfg.Pomodoro.Rounding),
		Backend:   string(cfg.Store.Backend),
		AlarmFile: cfg.Alarm.File,
		LogLevel:  cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
