package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/pt/internal/presenter"
	"github.com/runoshun/pt/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTick:
		m.now = msg.Now
		return m, tea.Batch(m.refresh(), tick())

	case MsgTasksLoaded:
		m.now = msg.Now
		m.tasks = msg.Tasks
		m.err = nil
		m.clampCursor()
		return m, nil

	case MsgNotified:
		if len(msg.Delivered) > 0 {
			m.status = nil
			for _, a := range msg.Delivered {
				m.status = append(m.status, presenter.AlertLine(a))
			}
		}
		return m, nil

	case MsgActionDone:
		m.status = msg.Messages
		m.err = msg.Err
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Check):
		uncheck := false
		if t := m.selected(); t != nil {
			uncheck = t.Checked
		}
		return m, m.runAction(func(ctx context.Context, id int) (*usecase.MutationOutput, error) {
			return m.container.CheckTasksUseCase().Execute(ctx, usecase.CheckTasksInput{IDs: []int{id}, Uncheck: uncheck})
		})
	case key.Matches(msg, m.keys.Pomodoro):
		return m, m.runAction(func(ctx context.Context, id int) (*usecase.MutationOutput, error) {
			return m.container.StartPomodoroUseCase().Execute(ctx, usecase.StartPomodoroInput{IDs: []int{id}})
		})
	case key.Matches(msg, m.keys.Finish):
		return m, m.runAction(func(ctx context.Context, id int) (*usecase.MutationOutput, error) {
			return m.container.FinishPomodoroUseCase().Execute(ctx, usecase.FinishPomodoroInput{IDs: []int{id}})
		})
	case key.Matches(msg, m.keys.Archive):
		return m, m.runAction(func(ctx context.Context, id int) (*usecase.MutationOutput, error) {
			return m.container.ArchiveTasksUseCase().Execute(ctx, usecase.ArchiveTasksInput{IDs: []int{id}})
		})
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
