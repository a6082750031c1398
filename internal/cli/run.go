package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/pt/internal/app"
	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/infra/config"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/usecase"
)

// runner executes the mode selected by the root command's flags.
type runner struct {
	container *app.Container
	flags     *rootFlags
	printer   *printer
}

func (r *runner) run(ctx context.Context, args []string) error {
	f := r.flags
	switch {
	case f.watch:
		return launchWatchFunc(r.container, f.notify)
	case f.notify:
		return r.notify(ctx)
	case f.testNotify:
		return r.testNotification(ctx)
	case f.check, f.uncheck:
		return r.batch(args, func(ids []int) (*usecase.MutationOutput, error) {
			return r.container.CheckTasksUseCase().Execute(ctx, usecase.CheckTasksInput{IDs: ids, Uncheck: f.uncheck})
		})
	case f.pomodoro:
		return r.batch(args, func(ids []int) (*usecase.MutationOutput, error) {
			return r.container.StartPomodoroUseCase().Execute(ctx, usecase.StartPomodoroInput{IDs: ids})
		})
	case f.finish:
		return r.batch(args, func(ids []int) (*usecase.MutationOutput, error) {
			return r.container.FinishPomodoroUseCase().Execute(ctx, usecase.FinishPomodoroInput{IDs: ids})
		})
	case f.archive, f.unarchive:
		return r.batch(args, func(ids []int) (*usecase.MutationOutput, error) {
			return r.container.ArchiveTasksUseCase().Execute(ctx, usecase.ArchiveTasksInput{IDs: ids, Unarchive: f.unarchive})
		})
	case f.archiveChecked:
		out, err := r.container.ArchiveTasksUseCase().Execute(ctx, usecase.ArchiveTasksInput{Checked: true})
		if err != nil {
			return r.printer.fail(err)
		}
		return r.printer.mutation(out)
	case f.track:
		return r.trackTime(ctx, args)
	case f.listArchived:
		return r.list(ctx, true)
	case f.logs != "":
		return r.showLogs(ctx, f.logs, args)
	case f.initConfig:
		return r.initConfig(ctx)
	case f.migrateStore != "":
		return r.migrate(ctx, f.migrateStore)
	case f.list || len(args) == 0:
		return r.list(ctx, false)
	default:
		return r.add(ctx, args)
	}
}

// batch parses every argument as an ID before running fn, so a bad argument
// changes nothing.
func (r *runner) batch(args []string, fn func(ids []int) (*usecase.MutationOutput, error)) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return r.printer.fail(err)
	}
	out, err := fn(ids)
	if err != nil {
		return r.printer.fail(err)
	}
	return r.printer.mutation(out)
}

func (r *runner) add(ctx context.Context, args []string) error {
	out, err := r.container.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{Description: strings.Join(args, " ")})
	if err != nil {
		return r.printer.fail(err)
	}
	return r.printer.mutation(out)
}

func (r *runner) list(ctx context.Context, archived bool) error {
	out, err := r.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Archived: archived})
	if err != nil {
		return err
	}
	r.printer.list(out.Tasks, out.Now)
	return nil
}

func (r *runner) trackTime(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return r.printer.fail(domain.ErrNoTaskID)
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return r.printer.fail(err)
	}
	if len(args) != 2 {
		return r.printer.fail(domain.NewTaskError(id, domain.ErrInvalidMinutes))
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return r.printer.fail(domain.NewTaskError(id, domain.ErrInvalidMinutes))
	}

	out, err := r.container.TrackTimeUseCase().Execute(ctx, usecase.TrackTimeInput{TaskID: id, Minutes: minutes})
	if err != nil {
		return r.printer.fail(err)
	}
	return r.printer.mutation(out)
}

func (r *runner) notify(ctx context.Context) error {
	out, err := r.container.NotifyExpiredUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	for _, a := range out.Delivered {
		r.printer.println(presenter.AlertLine(a))
	}
	return nil
}

func (r *runner) testNotification(ctx context.Context) error {
	out, err := r.container.SendTestNotificationUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	r.printer.println(out.Title + ": " + out.Body)
	return nil
}

func (r *runner) showLogs(ctx context.Context, arg string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q after --logs %s", args[0], arg)
	}
	id, err := parseTaskID(arg)
	if err != nil {
		return r.printer.fail(err)
	}
	out, err := r.container.ShowLogsUseCase().Execute(ctx, usecase.ShowLogsInput{TaskID: id, Lines: r.flags.lines})
	if err != nil {
		return r.printer.fail(err)
	}
	r.printer.println(out.Content)
	return nil
}

func (r *runner) initConfig(ctx context.Context) error {
	out, err := r.container.InitConfigUseCase().Execute(ctx, usecase.InitConfigInput{
		Path:     r.container.Config.ConfigPath,
		Template: config.RenderTemplate(domain.NewDefaultConfig()),
	})
	if err != nil {
		return err
	}
	r.printer.println("Created " + out.Path)
	return nil
}

func (r *runner) migrate(ctx context.Context, name string) error {
	backend, err := domain.ParseBackend(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	uc, destPath, err := r.container.MigrateStoreUseCase(backend)
	if err != nil {
		return err
	}
	out, err := uc.Execute(ctx, usecase.MigrateStoreInput{
		SourcePath: r.container.Config.StatePath,
		DestPath:   destPath,
	})
	if err != nil {
		return err
	}

	if out.Skipped {
		r.printer.println(fmt.Sprintf("%s already holds the same %d tasks.", out.DestPath, out.Total))
	} else {
		r.printer.println(fmt.Sprintf("Copied %d tasks to %s.", out.Total, out.DestPath))
	}
	r.printer.println(fmt.Sprintf("Set backend = %q under [store] in %s to use it.", backend, r.container.Config.ConfigPath))
	return nil
}
