package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shanedertrain/cusbc/internal/tui/colors"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	HeaderInfoStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Padding(0, 1)

	// Port state styles
	PortOnStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	PortOffStyle = lipgloss.NewStyle().
			Foreground(colors.Red)

	PendingStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true)

	// Status line styles
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colors.Green)

	StatusBusyStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)

	// Help area style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Surface2)
)
