package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewCountdown renders the gate screen: the greeting, the remaining time
// in big digits, and the secret prompt when the bypass gesture landed.
func (m Model) viewCountdown(pal palette) string {
	r := m.svc.Engine.Remaining()

	// Every unit is zero padded to two digits, days included.
	digits := fmt.Sprintf("%02d %02d %02d %02d", r.Days, r.Hours, r.Minutes, r.Seconds)

	titleStyle := lipgloss.NewStyle().Foreground(pal.accent).Italic(true)
	labelStyle := lipgloss.NewStyle().Foreground(pal.muted)

	labels := labelStyle.Render("days    hours   mins    secs")

	parts := []string{
		titleStyle.Render(m.greeting()),
		"",
		renderBigDigits(digits, pal.foreground, m.width),
		labels,
		"",
		m.waitBar.ViewAs(m.svc.Engine.Progress()),
		"",
	}

	if m.mode == inputSecret {
		parts = append(parts, m.promptView(pal))
	} else if m.svc.Engine.Done() {
		parts = append(parts, titleStyle.Render("it's time"))
	} else {
		parts = append(parts, m.helpLine(pal, "q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
