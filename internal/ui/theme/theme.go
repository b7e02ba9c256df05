// Package theme holds the CLI's output styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary = lipgloss.Color("#8B5CF6") // Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Ok = lipgloss.NewStyle().
		Foreground(Success)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)

	Fail = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)
