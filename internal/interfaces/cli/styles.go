package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
