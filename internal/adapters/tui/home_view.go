package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haven/internal/domain"
	"haven/internal/services"
)

var intensityGlyphs = map[domain.MoodIntensity]string{
	domain.IntensityLow:    "·",
	domain.IntensityMedium: "●",
	domain.IntensityHigh:   "◉",
}

// viewHome renders the dashboard: the greeting, the four widget cards, the
// book, and whatever prompt is open. Cards stay hidden until the
// coordinator reveals them.
func (m Model) viewHome(pal palette) string {
	titleStyle := lipgloss.NewStyle().Foreground(pal.accent).Bold(true)
	clockStyle := lipgloss.NewStyle().Foreground(pal.muted)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(m.greeting()),
		clockStyle.Render("   "+m.now().Format("15:04")),
	)

	cards := []string{}
	if m.screen.revealed[sectionMoods] {
		cards = append(cards, m.moodCard(pal))
	}
	if m.screen.revealed[sectionTasks] {
		cards = append(cards, m.taskCard(pal))
	}
	if m.screen.revealed[sectionReminders] {
		cards = append(cards, m.reminderCard(pal))
	}
	if m.screen.revealed[sectionLetters] {
		cards = append(cards, m.letterCard(pal))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	parts := []string{header, "", top, "", m.bookLine(pal)}

	switch {
	case m.homeConfirming():
		question := "delete this? (y/n)"
		if n := m.svc.MoodSel.Count() + m.svc.TaskSel.Count(); n > 1 {
			question = fmt.Sprintf("delete %d entries? (y/n)", n)
		}
		parts = append(parts, "", m.confirmView(pal, question))
	case m.mode != inputNone && m.mode != inputSecret:
		parts = append(parts, "", m.promptView(pal))
	case m.svc.MoodSel.Phase() == services.SelectionActive ||
		m.svc.TaskSel.Phase() == services.SelectionActive:
		parts = append(parts, "",
			m.helpLine(pal, "selecting · enter mark · s done · esc cancel"))
	default:
		parts = append(parts, "",
			m.helpLine(pal, "tab section · j/k move · a add · e edit · s select · x delete · enter act · o book · g garden · z zen · q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) card(pal palette, title string, focused bool, lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.muted).
		Padding(0, 1).
		Width(30).
		MarginRight(1)
	if focused {
		border = border.BorderForeground(pal.accent)
	}

	titleStyle := lipgloss.NewStyle().Foreground(pal.accent).Bold(true)
	body := titleStyle.Render(title)
	if len(lines) == 0 {
		empty := lipgloss.NewStyle().Foreground(pal.muted).Italic(true)
		return border.Render(body + "\n" + empty.Render("nothing here yet"))
	}
	return border.Render(body + "\n" + strings.Join(lines, "\n"))
}

func (m Model) line(pal palette, selected bool, text string) string {
	if selected {
		return lipgloss.NewStyle().Foreground(pal.accent).Render("› " + text)
	}
	return lipgloss.NewStyle().Foreground(pal.foreground).Render("  " + text)
}

func (m Model) moodCard(pal palette) string {
	focused := m.section == sectionMoods
	var lines []string
	for i, mood := range m.svc.Moods.All() {
		if i >= 6 {
			lines = append(lines, m.helpLine(pal, fmt.Sprintf("  … %d more", len(m.svc.Moods.All())-i)))
			break
		}
		text := fmt.Sprintf("%s %s · %s", intensityGlyphs[mood.Intensity], mood.Mood, mood.Category)
		if mood.Note != "" {
			text += " ✎"
		}
		if m.svc.MoodSel.Selected(mood.ID) {
			text = "✗ " + text
		}
		lines = append(lines, m.line(pal, focused && m.cursor == i, text))
	}
	return m.card(pal, "moods", focused, lines)
}

func (m Model) taskCard(pal palette) string {
	focused := m.section == sectionTasks
	now := m.now()

	title := "tasks"
	if m.searching != "" {
		title = fmt.Sprintf("tasks /%s", m.searching)
	}

	var lines []string
	for i, task := range m.visibleTasks() {
		if i >= 6 {
			lines = append(lines, m.helpLine(pal, fmt.Sprintf("  … %d more", len(m.visibleTasks())-i)))
			break
		}
		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		text := fmt.Sprintf("%s %s", box, task.Text)
		if task.Deadline != nil {
			text += " · " + task.Deadline.Format("Jan 2 15:04")
		}
		if m.svc.TaskSel.Selected(task.ID) {
			text = "✗ " + text
		}
		line := m.line(pal, focused && m.cursor == i, text)
		if task.Overdue(now) {
			line = lipgloss.NewStyle().Foreground(pal.overdue).Render("  " + text)
			if focused && m.cursor == i {
				line = lipgloss.NewStyle().Foreground(pal.overdue).Render("› " + text)
			}
		}
		lines = append(lines, line)
	}
	return m.card(pal, title, focused, lines)
}

func (m Model) reminderCard(pal palette) string {
	focused := m.section == sectionReminders
	var lines []string
	for i, text := range m.svc.Reminders.All() {
		if i >= 6 {
			lines = append(lines, m.helpLine(pal, fmt.Sprintf("  … %d more", len(m.svc.Reminders.All())-i)))
			break
		}
		lines = append(lines, m.line(pal, focused && m.cursor == i, "• "+text))
	}
	return m.card(pal, "reminders", focused, lines)
}

func (m Model) letterCard(pal palette) string {
	focused := m.section == sectionLetters
	var lines []string
	for i, letter := range m.cfg.Letters {
		label := fmt.Sprintf("%s %s · %s", letter.Icon, letter.Title, letter.Date)
		lines = append(lines, m.line(pal, focused && m.cursor == i, label))
		if m.letterOpen == i {
			content := lipgloss.NewStyle().
				Foreground(pal.foreground).
				Italic(true).
				Width(26).
				Render(letter.Content)
			lines = append(lines, content)
		}
	}
	return m.card(pal, "letters", focused, lines)
}

// bookLine renders the book widget. Open, it shows the pinned boards;
// closed, just the cover.
func (m Model) bookLine(pal palette) string {
	coverStyle := lipgloss.NewStyle().Foreground(pal.accent)
	if !m.screen.bookOpen {
		return coverStyle.Render("▐▓▓▓▌ a closed book")
	}

	boards := m.svc.Boards.Boards()
	if len(boards.Categories) == 0 {
		return coverStyle.Render("▐   ▌ the book lies open, its pages blank")
	}

	var parts []string
	for _, cat := range boards.Categories {
		parts = append(parts, fmt.Sprintf("%s (%d)", cat.Name, len(cat.Refs)))
	}
	return coverStyle.Render("▐   ▌ " + strings.Join(parts, " · "))
}
