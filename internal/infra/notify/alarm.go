package notify

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/runoshun/pt/internal/domain"
)

// Ensure Alarm implements domain.AlarmPlayer.
var _ domain.AlarmPlayer = (*Alarm)(nil)

// Alarm plays a sound file with paplay on Linux and afplay on macOS.
// Fields are ordered to minimize memory padding.
type Alarm struct {
	executor domain.CommandExecutor
	command  string
	file     string
	goos     string
}

// NewAlarm creates an Alarm for the given sound file.
// command overrides the platform player; it receives the file as its last argument.
func NewAlarm(executor domain.CommandExecutor, command, file string) *Alarm {
	return &Alarm{
		executor: executor,
		command:  command,
		file:     file,
		goos:     runtime.GOOS,
	}
}

// Play plays the sound file once and waits for the player to exit.
func (a *Alarm) Play(ctx context.Context) error {
	if _, err := os.Stat(a.file); err != nil {
		return fmt.Errorf("alarm file: %w", err)
	}

	cmd, err := a.buildCommand()
	if err != nil {
		return err
	}
	if out, err := a.executor.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Program, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (a *Alarm) buildCommand() (*domain.ExecCommand, error) {
	if fields := strings.Fields(a.command); len(fields) > 0 {
		return domain.NewCommand(fields[0], append(slices.Clone(fields[1:]), a.file)), nil
	}
	switch a.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return domain.NewCommand("paplay", []string{a.file}), nil
	case "darwin":
		return domain.NewCommand("afplay", []string{a.file}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, a.goos)
	}
}
