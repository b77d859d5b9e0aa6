package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"haven/internal/domain"
)

// View renders the active screen.
func (m Model) View() string {
	now := m.now()
	pal := m.themes.palette(now)

	var body string
	switch {
	case m.svc.Zen.Active():
		body = m.viewZen(pal)
	case m.screen.view == domain.ViewCountdown:
		body = m.viewCountdown(pal)
	case m.screen.view == domain.ViewGarden:
		body = m.viewGarden(pal)
	default:
		body = m.viewHome(pal)
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// greeting picks the salutation for the hour.
func (m Model) greeting() string {
	name := m.cfg.Greeting.Name
	switch hour := m.now().Hour(); {
	case hour < 5:
		return fmt.Sprintf("still up, %s?", name)
	case hour < 12:
		return fmt.Sprintf("good morning, %s", name)
	case hour < 18:
		return fmt.Sprintf("good afternoon, %s", name)
	default:
		return fmt.Sprintf("good evening, %s", name)
	}
}

func (m Model) viewZen(pal palette) string {
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)
	hintStyle := lipgloss.NewStyle().Foreground(pal.muted).Italic(true)

	return lipgloss.JoinVertical(lipgloss.Center,
		clockStyle.Render(m.now().Format("15:04")),
		"",
		hintStyle.Render("z to return"),
	)
}

func (m Model) promptView(pal palette) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.accent).
		Padding(0, 1)
	return style.Render(m.input.View())
}

func (m Model) helpLine(pal palette, text string) string {
	return lipgloss.NewStyle().Foreground(pal.muted).Render(text)
}
