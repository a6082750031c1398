// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/infra/config"
	"github.com/runoshun/pt/internal/infra/executor"
	"github.com/runoshun/pt/internal/infra/filestore"
	"github.com/runoshun/pt/internal/infra/logging"
	"github.com/runoshun/pt/internal/infra/notify"
	"github.com/runoshun/pt/internal/infra/sqlitestore"
	"github.com/runoshun/pt/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	Home       string // pt home directory ($PT_HOME or ~/.pt)
	StatePath  string // Task list file
	ConfigPath string // config.toml
	AlarmPath  string // Alarm sound file
	LedgerPath string // Notifier ledger
}

func newConfig(home string, appConfig *domain.Config) Config {
	return Config{
		Home:       home,
		StatePath:  appConfig.StatePath(home),
		ConfigPath: domain.ConfigPath(home),
		AlarmPath:  appConfig.AlarmPath(home),
		LedgerPath: domain.LedgerPath(home),
	}
}

// ResolveHome returns $PT_HOME if set, otherwise ~/.pt.
func ResolveHome() (string, error) {
	if home := os.Getenv(domain.HomeEnvVar); home != "" {
		return filepath.Abs(home)
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(userHome, domain.HomeDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks    domain.StateRepository
	Clock    domain.Clock
	Logger   domain.Logger
	Notifier domain.Notifier
	Alarm    domain.AlarmPlayer

	// Loaded configuration
	AppConfig *domain.Config

	// closers run on Close
	closers []func() error

	// Paths
	Config Config
}

// New creates a Container rooted at home, reading home/config.toml.
func New(home string) (*Container, error) {
	appConfig, err := config.NewLoader(home).Load()
	if err != nil {
		return nil, err
	}

	cfg := newConfig(home, appConfig)

	tasks, err := OpenStore(appConfig.Store.Backend, cfg.StatePath)
	if err != nil {
		return nil, err
	}

	level, ok := logging.ParseLevel(appConfig.Log.Level)
	if !ok {
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("invalid value in [log]: level: %q", appConfig.Log.Level))
	}
	logger := logging.New(home, level)

	exec := executor.NewClient()

	return &Container{
		Tasks:     tasks,
		Clock:     domain.RealClock{},
		Logger:    logger,
		Notifier:  notify.NewDesktop(exec, appConfig.Notify.Command, cfg.LedgerPath),
		Alarm:     notify.NewAlarm(exec, appConfig.Alarm.Command, cfg.AlarmPath),
		AppConfig: appConfig,
		Config:    cfg,
		closers:   []func() error{logger.Close},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, tasks domain.StateRepository, clock domain.Clock, logger domain.Logger, notifier domain.Notifier, alarm domain.AlarmPlayer) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		Notifier:  notifier,
		Alarm:     alarm,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// OpenStore returns the repository for backend at path.
func OpenStore(backend domain.Backend, path string) (domain.StateRepository, error) {
	switch backend {
	case domain.BackendJSON:
		return filestore.NewWithFormat(path, filestore.FormatJSON), nil
	case domain.BackendYAML:
		return filestore.NewWithFormat(path, filestore.FormatYAML), nil
	case domain.BackendSQLite:
		return sqlitestore.New(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

// Settings returns the pomodoro settings in effect.
func (c *Container) Settings() domain.PomodoroSettings {
	return c.AppConfig.Pomodoro
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// CheckTasksUseCase returns a new CheckTasks use case.
func (c *Container) CheckTasksUseCase() *usecase.CheckTasks {
	return usecase.NewCheckTasks(c.Tasks, c.Clock, c.Logger)
}

// ArchiveTasksUseCase returns a new ArchiveTasks use case.
func (c *Container) ArchiveTasksUseCase() *usecase.ArchiveTasks {
	return usecase.NewArchiveTasks(c.Tasks, c.Clock, c.Logger)
}

// StartPomodoroUseCase returns a new StartPomodoro use case.
func (c *Container) StartPomodoroUseCase() *usecase.StartPomodoro {
	return usecase.NewStartPomodoro(c.Tasks, c.Clock, c.Settings(), c.Logger)
}

// FinishPomodoroUseCase returns a new FinishPomodoro use case.
func (c *Container) FinishPomodoroUseCase() *usecase.FinishPomodoro {
	return usecase.NewFinishPomodoro(c.Tasks, c.Clock, c.Settings(), c.Logger)
}

// TrackTimeUseCase returns a new TrackTime use case.
func (c *Container) TrackTimeUseCase() *usecase.TrackTime {
	return usecase.NewTrackTime(c.Tasks, c.Clock, c.Logger)
}

// NotifyExpiredUseCase returns a new NotifyExpired use case.
func (c *Container) NotifyExpiredUseCase() *usecase.NotifyExpired {
	return usecase.NewNotifyExpired(c.Tasks, c.Clock, c.Notifier, c.Alarm, c.Settings(), c.Logger)
}

// SendTestNotificationUseCase returns a new SendTestNotification use case.
func (c *Container) SendTestNotificationUseCase() *usecase.SendTestNotification {
	return usecase.NewSendTestNotification(c.Notifier, c.Alarm)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Tasks, c.Config.Home)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig()
}

// MigrateStoreUseCase returns a MigrateStore use case copying the current
// tasks into backend's default file under the home directory.
func (c *Container) MigrateStoreUseCase(backend domain.Backend) (*usecase.MigrateStore, string, error) {
	destPath := filepath.Join(c.Config.Home, backend.FileName())
	dest, err := OpenStore(backend, destPath)
	if err != nil {
		return nil, "", err
	}
	return usecase.NewMigrateStore(c.Tasks, dest, c.Logger), destPath, nil
}
