// Package cli provides the command-line interface for pt.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/pt/internal/app"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/tui"
	"github.com/spf13/cobra"
)

// launchWatchFunc is a function variable for launching the watch view, allowing it to be mocked in tests.
var launchWatchFunc = tui.Run

// rootFlags holds the mode flags. At most one mode is set per invocation,
// except that --notify may accompany --watch. Flags are only parsed before
// the first positional argument, so a description may contain dash words.
type rootFlags struct {
	lines          int
	logs           string
	migrateStore   string
	list           bool
	check          bool
	uncheck        bool
	pomodoro       bool
	finish         bool
	track          bool
	archive        bool
	unarchive      bool
	archiveChecked bool
	listArchived   bool
	notify         bool
	testNotify     bool
	watch          bool
	initConfig     bool
}

// modeFlags are the flags that select what pt does. --notify is handled separately.
var modeFlags = []string{
	"list", "check", "uncheck", "pomodoro", "finish-pomodoro", "track",
	"archive", "unarchive", "archive-checked", "list-archived",
	"test-notification", "watch", "logs", "init-config", "migrate-store",
}

// NewRootCommand creates the root command for pt.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "pt [description...]",
		Short: "Pomodoro task tracker",
		Long: `pt keeps a small task list and times pomodoros against it.

Run pt with words to add a task, with no arguments to list tasks,
or with one of the flags below. Task IDs are the numbers shown in the list.

Examples:
  pt Make tea            add a task
  pt -p 1 2              start pomodoros on tasks 1 and 2
  pt -f 1                finish the pomodoro on task 1
  pt -c 1                check task 1
  pt --logs 1 -n 20      show the last 20 log lines of task 1
  watch -n1 pt --notify  notify when pomodoros run out`,
		Args:    cobra.ArbitraryArgs,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return cmd.Help()
			}
			if cmd.Flags().Changed("lines") {
				if f.logs == "" {
					return errors.New("--lines can only be used with --logs")
				}
				if f.lines < 0 {
					return fmt.Errorf("--lines must not be negative: %d", f.lines)
				}
			}
			r := &runner{
				container: c,
				flags:     &f,
				printer: &printer{
					out:       cmd.OutOrStdout(),
					errOut:    cmd.ErrOrStderr(),
					presenter: presenter.New(c.Settings().Duration),
				},
			}
			return r.run(cmd.Context(), args)
		},
	}

	flags := root.Flags()
	flags.SetInterspersed(false)
	flags.BoolVarP(&f.list, "list", "l", false, "List tasks (the default with no arguments)")
	flags.BoolVarP(&f.check, "check", "c", false, "Check tasks: pt -c <id>...")
	flags.BoolVarP(&f.uncheck, "uncheck", "u", false, "Uncheck tasks: pt -u <id>...")
	flags.BoolVarP(&f.pomodoro, "pomodoro", "p", false, "Start pomodoros: pt -p <id>...")
	flags.BoolVarP(&f.finish, "finish-pomodoro", "f", false, "Finish pomodoros and credit the time: pt -f <id>...")
	flags.BoolVarP(&f.track, "track", "t", false, "Credit minutes without a pomodoro: pt -t <id> <minutes>")
	flags.BoolVarP(&f.archive, "archive", "a", false, "Move tasks to the archive: pt -a <id>...")
	flags.BoolVar(&f.unarchive, "unarchive", false, "Move tasks out of the archive: pt --unarchive <id>...")
	flags.BoolVar(&f.archiveChecked, "archive-checked", false, "Move every checked task to the archive")
	flags.BoolVar(&f.listArchived, "list-archived", false, "List archived tasks")
	flags.BoolVar(&f.notify, "notify", false, "Notify about pomodoros that ran out (poll it, e.g. with watch)")
	flags.BoolVar(&f.testNotify, "test-notification", false, "Show a test notification and play the alarm")
	flags.BoolVarP(&f.watch, "watch", "w", false, "Live view refreshing every second (add --notify to get notifications)")
	flags.StringVar(&f.logs, "logs", "", "Show the log of a task: pt --logs <id> [-n <lines>]")
	flags.IntVarP(&f.lines, "lines", "n", 0, "With --logs, number of lines from the end (0 = all)")
	flags.BoolVar(&f.initConfig, "init-config", false, "Write a commented config.toml with the defaults")
	flags.StringVar(&f.migrateStore, "migrate-store", "", "Copy tasks to another store backend (json, yaml, sqlite)")

	root.MarkFlagsMutuallyExclusive(modeFlags...)
	for _, name := range modeFlags {
		if name != "watch" {
			root.MarkFlagsMutuallyExclusive("notify", name)
		}
	}

	return root
}
