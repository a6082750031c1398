// Package tui provides the live terminal view behind `pt --watch`.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pt/internal/app"
	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/usecase"
)

// tickInterval is how often the view re-reads the task list.
const tickInterval = time.Second

// Model is the bubbletea model for the watch view.
// Fields are ordered to minimize memory padding.
type Model struct {
	now       time.Time
	container *app.Container
	presenter *presenter.Presenter
	err       error
	tasks     []*domain.Task
	status    []string
	keys      KeyMap
	styles    Styles
	help      help.Model
	cursor    int
	width     int
	notify    bool
}

// New creates a watch Model. With notify set, every tick also announces
// expired pomodoros the way `pt --notify` does.
func New(c *app.Container, notify bool) *Model {
	return &Model{
		container: c,
		presenter: presenter.New(c.Settings().Duration),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		notify:    notify,
	}
}

// Run starts the watch view and blocks until the user quits.
func Run(c *app.Container, notify bool) error {
	p := tea.NewProgram(New(c, notify), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return MsgTick{Now: t}
	})
}

// refresh loads tasks and, in notify mode, checks for expired pomodoros.
func (m *Model) refresh() tea.Cmd {
	if !m.notify {
		return m.loadTasks()
	}
	return tea.Sequence(m.loadTasks(), m.notifyExpired())
}

// loadTasks returns a command that loads the active tasks.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Now: out.Now, Tasks: out.Tasks}
	}
}

// notifyExpired returns a command that announces expired pomodoros.
func (m *Model) notifyExpired() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NotifyExpiredUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotified{Delivered: out.Delivered}
	}
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// runAction returns a command that applies a mutation to the selected task.
func (m *Model) runAction(fn func(ctx context.Context, id int) (*usecase.MutationOutput, error)) tea.Cmd {
	task := m.selected()
	if task == nil {
		return nil
	}
	id := task.ID
	return func() tea.Msg {
		out, err := fn(context.Background(), id)
		if err != nil {
			return MsgActionDone{Err: err}
		}
		msgs := make([]string, 0, len(out.Outcomes))
		for _, o := range out.Outcomes {
			msgs = append(msgs, presenter.Message(o))
		}
		return MsgActionDone{Messages: msgs, Err: out.Err()}
	}
}
