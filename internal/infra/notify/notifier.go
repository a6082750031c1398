// Package notify delivers desktop notifications and plays the alarm sound
// by running the platform's command-line tools.
package notify

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
)

// ErrUnsupportedPlatform is returned when no default command exists for the OS
// and none is configured.
var ErrUnsupportedPlatform = errors.New("no notification command for this platform")

// Ensure Desktop implements domain.Notifier.
var _ domain.Notifier = (*Desktop)(nil)

// Desktop shows notifications with notify-send on Linux and osascript on macOS.
// Fields are ordered to minimize memory padding.
type Desktop struct {
	executor   domain.CommandExecutor
	command    string
	ledgerPath string
	goos       string
}

// NewDesktop creates a Desktop notifier.
// command overrides the platform default; it receives the title and body as
// its last two arguments.
func NewDesktop(executor domain.CommandExecutor, command, ledgerPath string) *Desktop {
	return &Desktop{
		executor:   executor,
		command:    command,
		ledgerPath: ledgerPath,
		goos:       runtime.GOOS,
	}
}

// Notify shows every alert missing from the ledger and records it.
// Alerts whose delivery fails stay out of the ledger so the next poll retries them.
func (d *Desktop) Notify(ctx context.Context, alerts []domain.Alert) ([]domain.Alert, error) {
	l, err := loadLedger(d.ledgerPath)
	if err != nil {
		return nil, err
	}
	dirty := l.retain(alerts)

	var delivered []domain.Alert
	var errs []error
	for _, a := range alerts {
		if l.has(a) {
			continue
		}
		if err := d.Send(ctx, presenter.AlertTitle(a), a.Description); err != nil {
			errs = append(errs, domain.NewTaskError(a.TaskID, err))
			continue
		}
		l.add(a)
		dirty = true
		delivered = append(delivered, a)
	}

	if dirty {
		if err := l.save(); err != nil {
			errs = append(errs, err)
		}
	}
	return delivered, errors.Join(errs...)
}

// Send shows one notification.
func (d *Desktop) Send(ctx context.Context, title, body string) error {
	cmd, err := d.buildCommand(title, body)
	if err != nil {
		return err
	}
	if out, err := d.executor.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Program, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (d *Desktop) buildCommand(title, body string) (*domain.ExecCommand, error) {
	if fields := strings.Fields(d.command); len(fields) > 0 {
		args := append(slices.Clone(fields[1:]), title, body)
		return domain.NewCommand(fields[0], args), nil
	}
	switch d.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return domain.NewCommand("notify-send", []string{title, body}), nil
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(body), strconv.Quote(title))
		return domain.NewCommand("osascript", []string{"-e", script}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, d.goos)
	}
}
