package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#5FAFAF")
	secondaryColor = lipgloss.Color("#666666")
	successColor   = lipgloss.Color("#87AF87")
	warnColor      = lipgloss.Color("#AF875F")
	errorColor     = lipgloss.Color("#AF5F5F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	imminentStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	cancelledStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(secondaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
