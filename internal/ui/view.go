package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	bar := m.renderClockBar()
	fieldHeight := m.height - lipgloss.Height(bar)
	if fieldHeight <= 0 {
		return bar
	}

	field := lipgloss.NewStyle().
		Background(lipgloss.Color(m.frame.Background.Hex())).
		Width(m.width).
		Height(fieldHeight).
		Render("")
	return lipgloss.JoinVertical(lipgloss.Left, field, bar)
}

// renderClockBar draws the status line, the countdown and the key help on
// a black band under the color field.
func (m *App) renderClockBar() string {
	lines := []string{
		m.renderStatus(),
		styleClock.Render(m.frame.Clock),
		m.help.View(m.keys),
	}
	return styleClockBar.Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m *App) renderStatus() string {
	if m.toast != "" {
		return styleToast.Render(ansi.Truncate(m.toast, m.width, "…"))
	}
	if m.frame.Paused {
		return styleStatus.Render("paused")
	}
	return styleStatus.Render("")
}
