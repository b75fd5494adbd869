package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#32cd32")
	muted  = lipgloss.Color("#6b7280")

	navStyle       = lipgloss.NewStyle().Padding(0, 2)
	navActiveStyle = navStyle.Foreground(accent).Bold(true).Underline(true)
	navBarStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(muted)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	badgeStyle  = lipgloss.NewStyle().Foreground(accent).Padding(0, 1)
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#fb923c")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	goUpStyle = lipgloss.NewStyle().
			Foreground(accent).
			Background(lipgloss.Color("#000000")).
			Align(lipgloss.Center)
)
