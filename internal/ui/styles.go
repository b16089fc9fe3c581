package ui

import "github.com/charmbracelet/lipgloss"

var (
	cBlack     = lipgloss.Color("#000000")
	cWhite     = lipgloss.Color("#ffffff")
	cLightGray = lipgloss.Color("250")
	cGold      = lipgloss.Color("220")

	styleClockBar = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cBlack).
			Align(lipgloss.Center)

	styleClock = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cBlack).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(cLightGray).
			Background(cBlack)

	styleToast = lipgloss.NewStyle().
			Foreground(cGold).
			Background(cBlack)
)
