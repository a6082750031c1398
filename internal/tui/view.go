package tui

import (
	"strings"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/presenter"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("pt"))
	if !m.now.IsZero() {
		b.WriteString("  " + m.styles.Clock.Render(m.now.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Status.Render(presenter.NoTasks) + "\n")
	}
	for i, t := range m.tasks {
		b.WriteString(m.viewTask(t, i == m.cursor) + "\n")
	}

	if len(m.status) > 0 {
		b.WriteString("\n")
		for _, s := range m.status {
			b.WriteString(m.styles.Status.Render(s) + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return m.styles.App.Render(b.String())
}

func (m *Model) viewTask(t *domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	line := m.presenter.Line(t, m.now)
	style := m.styles.Task
	switch {
	case selected:
		style = m.styles.Selected
	case m.presenter.Expired(t, m.now):
		style = m.styles.Expired
	case t.IsPomodoroActive():
		style = m.styles.Running
	case t.Checked:
		style = m.styles.Checked
	}
	return cursor + style.Render(line)
}
