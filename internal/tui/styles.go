package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan  = lipgloss.Color("#06B6D4")
	gray  = lipgloss.Color("#9CA3AF")
	red   = lipgloss.Color("#F87171")
	green = lipgloss.Color("#34D399")

	styleTitle = lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true).
			MarginBottom(1)

	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Padding(1, 2)

	styleMuted = lipgloss.NewStyle().
			Foreground(gray)

	styleError = lipgloss.NewStyle().
			Foreground(red)

	styleOK = lipgloss.NewStyle().
		Foreground(green)

	styleSpinner = lipgloss.NewStyle().
			Foreground(cyan)
)
