package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	textStyle = lipgloss.NewStyle().
			MarginLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			MarginLeft(2)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true).
			MarginLeft(2)

	onlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	offlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginLeft(2)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	statsStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center)

	humanCellStyle = cellStyle.
			Foreground(lipgloss.Color("39")).
			Bold(true)

	aiCellStyle = cellStyle.
			Foreground(lipgloss.Color("203")).
			Bold(true)

	wildCellStyle = cellStyle.
			Foreground(lipgloss.Color("213"))

	emptyCellStyle = cellStyle.
			Foreground(lipgloss.Color("240"))
)

const (
	cursorBackground  = lipgloss.Color("236")
	winningBackground = lipgloss.Color("22")
)
