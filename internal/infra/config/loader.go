// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/pt/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the TOML file in the pt home directory.
type Loader struct {
	home string // Path to the pt home directory
}

// NewLoader creates a new Loader.
func NewLoader(home string) *Loader {
	return &Loader{home: home}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return domain.ConfigPath(l.home)
}

// Load returns the configuration merged over the defaults.
// A missing file yields the defaults. Unknown keys and invalid values
// are reported in Config.Warnings and leave the default in place.
func (l *Loader) Load() (*domain.Config, error) {
	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML content over the default configuration.
func Parse(data []byte) (*domain.Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig applies the raw map to the default config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := domain.NewDefaultConfig()
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warn("unknown key: %s", section)
			continue
		}
		switch section {
		case "pomodoro":
			for k, v := range m {
				switch k {
				case "duration":
					d, err := parseDuration(v)
					if err != nil {
						warn("invalid value in [pomodoro]: duration: %v", err)
						continue
					}
					res.Pomodoro.Duration = d
				case "on_running":
					p, err := domain.ParseRunningPolicy(fmt.Sprint(v))
					if err != nil {
						warn("invalid value in [pomodoro]: on_running: %v", err)
						continue
					}
					res.Pomodoro.OnRunning = p
				case "rounding":
					r, err := domain.ParseRounding(fmt.Sprint(v))
					if err != nil {
						warn("invalid value in [pomodoro]: rounding: %v", err)
						continue
					}
					res.Pomodoro.Rounding = r
				default:
					warn("unknown key in [pomodoro]: %s", k)
				}
			}
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					b, err := domain.ParseBackend(fmt.Sprint(v))
					if err != nil {
						warn("invalid value in [store]: backend: %v", err)
						continue
					}
					res.Store.Backend = b
				case "path":
					if s, ok := v.(string); ok {
						res.Store.Path = s
					}
				default:
					warn("unknown key in [store]: %s", k)
				}
			}
		case "notify":
			for k, v := range m {
				switch k {
				case "command":
					if s, ok := v.(string); ok {
						res.Notify.Command = s
					}
				default:
					warn("unknown key in [notify]: %s", k)
				}
			}
		case "alarm":
			for k, v := range m {
				switch k {
				case "command":
					if s, ok := v.(string); ok {
						res.Alarm.Command = s
					}
				case "file":
					if s, ok := v.(string); ok && s != "" {
						res.Alarm.File = s
					}
				default:
					warn("unknown key in [alarm]: %s", k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warn("unknown key in [log]: %s", k)
				}
			}
		default:
			warn("unknown section: %s", section)
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseDuration accepts a Go duration string ("25m") or an integer number of minutes.
func parseDuration(v any) (time.Duration, error) {
	var d time.Duration
	switch x := v.(type) {
	case string:
		parsed, err := time.ParseDuration(x)
		if err != nil {
			return 0, err
		}
		d = parsed
	case int64:
		d = time.Duration(x) * time.Minute
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
