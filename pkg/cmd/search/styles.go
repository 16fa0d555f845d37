package search

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A5"))

	excerptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			PaddingLeft(2)

	matchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AA0")).
			PaddingLeft(2)
)
