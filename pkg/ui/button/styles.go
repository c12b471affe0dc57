package button

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary            = lipgloss.Color("212")
	DisabledBackground = lipgloss.Color("240") // grey
	DisabledText       = lipgloss.Color("247")
	LoaderColor        = lipgloss.Color("255") // white
)

// Button styles
var (
	Normal = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("238")).
		Bold(true).
		Padding(0, 2)

	Hover = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(Primary).
		Bold(true).
		Padding(0, 2)

	Loader = lipgloss.NewStyle().
		Foreground(LoaderColor)
)
