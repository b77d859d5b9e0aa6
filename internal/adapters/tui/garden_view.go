package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haven/internal/domain"
	"haven/internal/services"
)

var flowerGlyphs = map[domain.FlowerType]string{
	domain.FlowerRose:       "✿",
	domain.FlowerTulip:      "❀",
	domain.FlowerDaisy:      "✾",
	domain.FlowerPeony:      "❁",
	domain.FlowerRanunculus: "✽",
}

// viewGarden renders the planted notes, the pressed-flower album when it
// is open, and the delete confirmation when one is pending.
func (m Model) viewGarden(pal palette) string {
	titleStyle := lipgloss.NewStyle().Foreground(pal.accent).Bold(true)
	clockStyle := lipgloss.NewStyle().Foreground(pal.muted)

	audio := "♪"
	if m.svc.Coord.Muted() {
		audio = "♪̶"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("the garden"),
		clockStyle.Render("   "+m.now().Format("15:04")+"  "+audio),
	)

	var parts []string
	parts = append(parts, header, "")

	if m.albumOpen {
		parts = append(parts, m.albumView(pal))
	} else {
		parts = append(parts, m.bedView(pal))
	}

	switch {
	case m.svc.Selection.Phase() == services.SelectionConfirming:
		question := "pull this flower out? (y/n)"
		if n := m.svc.Selection.Count(); n > 1 {
			question = fmt.Sprintf("pull %d flowers out? (y/n)", n)
		}
		parts = append(parts, "", m.confirmView(pal, question))
	case m.mode == inputGardenNote:
		parts = append(parts, "", m.promptView(pal))
	case m.svc.Selection.Phase() == services.SelectionActive:
		parts = append(parts, "",
			m.helpLine(pal, "selecting · enter mark · s done · esc cancel"))
	default:
		parts = append(parts, "",
			m.helpLine(pal, "a plant · enter bloom · s select · v album · m sound · h home · z zen · q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) bedView(pal palette) string {
	notes := m.svc.Garden.All()
	if len(notes) == 0 {
		return lipgloss.NewStyle().Foreground(pal.muted).Italic(true).
			Render("bare soil. plant something.")
	}

	budStyle := lipgloss.NewStyle().Foreground(pal.muted)
	bloomStyle := lipgloss.NewStyle().Foreground(pal.accent)
	markStyle := lipgloss.NewStyle().Foreground(pal.overdue).Bold(true)

	var lines []string
	for i, note := range notes {
		glyph := flowerGlyphs[note.FlowerType]

		var text string
		if note.Bloomed {
			text = bloomStyle.Render(glyph) + " " + note.Text
		} else {
			text = budStyle.Render("ɞ") + " " + budStyle.Render("a closed bud")
		}

		prefix := "  "
		if m.cursor == i {
			prefix = "› "
		}
		if m.svc.Selection.Selected(note.ID) {
			prefix = markStyle.Render("✗ ")
		}
		lines = append(lines, prefix+text)
	}
	return strings.Join(lines, "\n")
}

// albumView shows pressed specimens two to a spread.
func (m Model) albumView(pal palette) string {
	spreads := m.svc.Garden.AlbumSpreads()
	if len(spreads) == 0 {
		return lipgloss.NewStyle().Foreground(pal.muted).Italic(true).
			Render("the album is empty")
	}

	page := m.albumPage
	if page >= len(spreads) {
		page = len(spreads) - 1
	}

	pageStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.muted).
		Padding(1, 2).
		Width(34)
	labelStyle := lipgloss.NewStyle().Foreground(pal.muted).Italic(true)

	var panes []string
	for _, note := range spreads[page] {
		body := lipgloss.JoinVertical(lipgloss.Center,
			flowerGlyphs[note.FlowerType],
			labelStyle.Render(domain.FlowerLabel(note.FlowerType)),
			labelStyle.Render(note.CreatedAt.Format("Jan 2, 2006")),
			"",
			note.Text,
		)
		panes = append(panes, pageStyle.Render(body))
	}

	footer := m.helpLine(pal, fmt.Sprintf("spread %d of %d · [ ] turn · v close", page+1, len(spreads)))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		footer,
	)
}

func (m Model) confirmView(pal palette, question string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(pal.overdue).
		Padding(0, 2)
	return style.Render(question)
}
