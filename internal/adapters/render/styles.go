package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Table styles
	HeaderCell = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	NumberCell = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)

	SymbolCell = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	TotalCell = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right)

	// Zero buy prices mean the valuation is missing
	MissingCell = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(0, 1).
			Align(lipgloss.Right)

	Border = lipgloss.NewStyle().
		Foreground(Muted)

	// Detail view
	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
