package domain

import (
	"fmt"
	"path/filepath"
)

// File and directory names under the pt home directory.
const (
	HomeDirName     = ".pt"           // Default home directory under $HOME
	HomeEnvVar      = "PT_HOME"       // Overrides the home directory
	ConfigFileName  = "config.toml"   // Config file name
	AlarmFileName   = "alarm.mp3"     // Default alarm sound
	LedgerFileName  = "notified.json" // Notifier de-duplication ledger
	LogsDirName     = "logs"          // Log directory
	GlobalLogName   = "pt.log"        // Global log file name
	DefaultLogLevel = "info"
)

// Backend selects the storage technology for the task list.
type Backend string

// Store backends.
const (
	BackendJSON   Backend = "json"
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendJSON, BackendYAML, BackendSQLite:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// FileName returns the state file name used by the backend.
func (b Backend) FileName() string {
	switch b {
	case BackendYAML:
		return "tasks.yaml"
	case BackendSQLite:
		return "tasks.db"
	default:
		return "tasks.json"
	}
}

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig      // [store] settings
	Notify   NotifyConfig     // [notify] settings
	Alarm    AlarmConfig      // [alarm] settings
	Log      LogConfig        // [log] settings
	Warnings []string         // Problems found while loading (unknown keys, bad values)
	Pomodoro PomodoroSettings // [pomodoro] settings
}

// StoreConfig holds storage settings from [store] section.
type StoreConfig struct {
	Backend Backend // json, yaml or sqlite
	Path    string  // Explicit state file path (empty = <home>/<backend file name>)
}

// NotifyConfig holds desktop notification settings from [notify] section.
type NotifyConfig struct {
	Command string // Program used to show notifications (empty = platform default)
}

// AlarmConfig holds alarm settings from [alarm] section.
type AlarmConfig struct {
	Command string // Program used to play the sound (empty = platform default)
	File    string // Sound file, relative to the home directory unless absolute
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Pomodoro: DefaultPomodoroSettings(),
		Store: StoreConfig{
			Backend: BackendJSON,
		},
		Alarm: AlarmConfig{
			File: AlarmFileName,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// StatePath returns the state file path for the config under home.
func (c *Config) StatePath(home string) string {
	if c.Store.Path != "" {
		return resolve(home, c.Store.Path)
	}
	return filepath.Join(home, c.Store.Backend.FileName())
}

// AlarmPath returns the alarm sound path under home.
func (c *Config) AlarmPath(home string) string {
	return resolve(home, c.Alarm.File)
}

// ConfigPath returns the config file path under home.
func ConfigPath(home string) string {
	return filepath.Join(home, ConfigFileName)
}

// LedgerPath returns the notifier ledger path under home.
func LedgerPath(home string) string {
	return filepath.Join(home, LedgerFileName)
}

// GlobalLogPath returns the global log file path under home.
func GlobalLogPath(home string) string {
	return filepath.Join(home, LogsDirName, GlobalLogName)
}

// TaskLogPath returns the log file path for a task under home.
func TaskLogPath(home string, taskID int) string {
	return filepath.Join(home, LogsDirName, fmt.Sprintf("task-%d.log", taskID))
}

func resolve(home, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(home, path)
}
