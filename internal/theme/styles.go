package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	TimerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	StatusStyle = lipgloss.NewStyle().
			Bold(true)

	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorCounter)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NotifyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// Settings menu styles
var (
	MenuRowStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MenuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	MenuEditingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorEditing)

	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Padding(1, 0)
)
