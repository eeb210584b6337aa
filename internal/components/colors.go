package components

import "github.com/charmbracelet/lipgloss"

const (
	ColorBlack  = lipgloss.Color("0")
	ColorWhite  = lipgloss.Color("15")
	ColorGrey   = lipgloss.Color("7")
	ColorPurple = lipgloss.Color("5")
	ColorGreen  = lipgloss.Color("2")
	ColorOrange = lipgloss.Color("208")
)
