// Package render formats pay gap views for the terminal using lipgloss and glamour.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sells-group/paygap/internal/view"
)

var (
	// MaleColor and FemaleColor match the dashboard chart.
	MaleColor   = lipgloss.Color(view.MaleColor)
	FemaleColor = lipgloss.Color(view.FemaleColor)
	// SubtleColor is used for secondary text.
	SubtleColor = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(MaleColor).
			MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FemaleColor)

	MaleStyle = lipgloss.NewStyle().
			Foreground(MaleColor)

	FemaleStyle = lipgloss.NewStyle().
			Foreground(FemaleColor)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)
