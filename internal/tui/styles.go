package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Normal   lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Normal:   lipgloss.Color("#DFE6E9"), // Light gray
	Selected: lipgloss.Color("#FFEAA7"), // Pale yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App      lipgloss.Style
	Header   lipgloss.Style
	Clock    lipgloss.Style
	Task     lipgloss.Style
	Selected lipgloss.Style
	Checked  lipgloss.Style
	Running  lipgloss.Style
	Expired  lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Clock: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Task: lipgloss.NewStyle().
			Foreground(Colors.Normal),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Selected),

		Checked: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Running: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Expired: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Selected),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Help: lipgloss.NewStyle().
			MarginTop(1),
	}
}
