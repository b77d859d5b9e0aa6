// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/services"
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// inputMode says which text prompt, if any, currently owns the keyboard.
type inputMode int

const (
	inputNone inputMode = iota
	inputSecret
	inputMood
	inputTaskText
	inputTaskDate
	inputTaskTime
	inputReminder
	inputMoodNote
	inputGardenNote
	inputSearch
)

// Home dashboard sections, in reveal order.
const (
	sectionMoods = iota
	sectionTasks
	sectionReminders
	sectionLetters
)

// Services bundles everything the model drives.
type Services struct {
	Engine    *services.CountdownEngine
	Coord     *services.Coordinator
	Zen       *services.ZenController
	Book      *services.BookController
	Selection *services.SelectionController
	MoodSel   *services.SelectionController
	TaskSel   *services.SelectionController
	Bypass    *services.BypassGate
	Moods     *services.MoodService
	Tasks     *services.TaskService
	Reminders *services.ReminderService
	Garden    *services.GardenService
	Boards    *services.BoardService
}

// Model represents the TUI state.
type Model struct {
	svc    Services
	screen *Screen
	themes *themeSwitcher
	cfg    *config.Config
	now    func() time.Time

	width  int
	height int

	input     textinput.Model
	waitBar   progress.Model
	mode      inputMode
	taskText  string
	taskDate  string
	searching string

	section    int
	cursor     int
	letterOpen int

	albumOpen bool
	albumPage int

	editID  string
	editIdx int

	// pendingReminder is the index awaiting delete confirmation, -1 when
	// none. Reminders are positional, so they cannot ride the id-based
	// selection controllers.
	pendingReminder int

	unlocked bool
}

// NewModel creates a new TUI model. The screen pointer must be the same
// one the coordinator renders through.
func NewModel(svc Services, scr *Screen, cfg *config.Config, now func() time.Time) Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 40

	theme := resolveTheme(&cfg.Theme)
	waitBar := progress.New(
		progress.WithGradient(theme.DayAccent, theme.NightAccent),
		progress.WithWidth(44),
		progress.WithoutPercentage(),
	)

	return Model{
		svc:        svc,
		screen:     scr,
		themes:     newThemeSwitcher(theme, cfg.Zen),
		cfg:        cfg,
		now:        now,
		input:      input,
		waitBar:    waitBar,
		letterOpen:      -1,
		editIdx:         -1,
		pendingReminder: -1,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.svc.Coord.Activity()

		if m.svc.Zen.Active() {
			if msg.String() == "z" {
				m.svc.Zen.Toggle()
			}
			return m, nil
		}

		if m.mode != inputNone {
			return m.updateInput(msg)
		}

		switch m.screen.view {
		case domain.ViewCountdown:
			return m.updateCountdown(msg)
		case domain.ViewHome:
			return m.updateHome(msg)
		case domain.ViewGarden:
			return m.updateGarden(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		now := time.Time(msg)
		m.svc.Engine.Tick()
		m.svc.Bypass.Tick(now)
		m.svc.Zen.Tick(now)
		m.svc.Coord.Tick(now)
		m.themes.tick(now)

		// The gate opens on its own once the target passes or the bypass
		// succeeded. A refused switch is retried on the next tick.
		if (m.svc.Engine.Done() || m.unlocked) && m.svc.Coord.ActiveView() == domain.ViewCountdown {
			_ = m.svc.Coord.SwitchTo(domain.ViewHome)
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) updateCountdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		m.themes.press(m.now())
	case "enter":
		if m.svc.Bypass.Activate() {
			return m, m.openInput(inputSecret, "")
		}
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete confirmation owns the keyboard until answered.
	if m.homeConfirming() {
		switch msg.String() {
		case "y", "enter":
			if m.pendingReminder >= 0 {
				_ = m.svc.Reminders.Remove(m.pendingReminder)
				m.pendingReminder = -1
			}
			_ = m.svc.MoodSel.Confirm()
			_ = m.svc.TaskSel.Confirm()
			m.clampCursor()
		case "n", "esc":
			m.pendingReminder = -1
			m.svc.MoodSel.Decline()
			m.svc.TaskSel.Decline()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "z":
		m.svc.Zen.Toggle()
	case "t":
		m.themes.press(m.now())
	case "g":
		_ = m.svc.Coord.SwitchTo(domain.ViewGarden)
		m.cursor = 0
	case "o":
		_ = m.svc.Book.Toggle()
	case "tab":
		m.section = (m.section + 1) % services.SectionCount
		m.cursor = 0
	case "shift+tab":
		m.section = (m.section + services.SectionCount - 1) % services.SectionCount
		m.cursor = 0
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		if m.section == sectionTasks {
			return m, m.openInput(inputSearch, "search tasks")
		}
	case "s":
		switch m.section {
		case sectionMoods:
			m.svc.MoodSel.Toggle()
		case sectionTasks:
			m.svc.TaskSel.Toggle()
		}
	case "esc":
		m.svc.MoodSel.Cancel()
		m.svc.TaskSel.Cancel()
	case "a":
		switch m.section {
		case sectionMoods:
			return m, m.openInput(inputMood, "how do you feel?")
		case sectionTasks:
			return m, m.openInput(inputTaskText, "what needs doing?")
		case sectionReminders:
			return m, m.openInput(inputReminder, "remember to...")
		}
	case "e":
		switch m.section {
		case sectionMoods:
			if mood := m.currentMood(); mood != nil {
				m.editID = mood.ID
				return m, m.openInput(inputMoodNote, "add a note")
			}
		case sectionReminders:
			if idx, ok := m.currentReminderIndex(); ok {
				m.editIdx = idx
				cmd := m.openInput(inputReminder, "remember to...")
				m.input.SetValue(m.svc.Reminders.All()[idx])
				m.input.CursorEnd()
				return m, cmd
			}
		}
	case "enter", " ":
		switch m.section {
		case sectionMoods:
			if mood := m.currentMood(); mood != nil {
				if m.svc.MoodSel.Phase() == services.SelectionActive {
					m.svc.MoodSel.Select(mood.ID)
				} else {
					_ = m.svc.Moods.CycleIntensity(mood.ID)
				}
			}
		case sectionTasks:
			if task := m.currentTask(); task != nil {
				if m.svc.TaskSel.Phase() == services.SelectionActive {
					m.svc.TaskSel.Select(task.ID)
				} else {
					_ = m.svc.Tasks.Toggle(task.ID)
				}
			}
		case sectionLetters:
			if m.letterOpen == m.cursor {
				m.letterOpen = -1
			} else if m.cursor < len(m.cfg.Letters) {
				m.letterOpen = m.cursor
			}
		}
	case "x":
		switch m.section {
		case sectionMoods:
			if mood := m.currentMood(); mood != nil {
				m.svc.MoodSel.Request(mood.ID)
			}
		case sectionTasks:
			if task := m.currentTask(); task != nil {
				m.svc.TaskSel.Request(task.ID)
			}
		case sectionReminders:
			if idx, ok := m.currentReminderIndex(); ok {
				m.pendingReminder = idx
			}
		}
	}
	return m, nil
}

// homeConfirming reports whether any home list is waiting on a delete
// confirmation.
func (m Model) homeConfirming() bool {
	return m.pendingReminder >= 0 ||
		m.svc.MoodSel.Phase() == services.SelectionConfirming ||
		m.svc.TaskSel.Phase() == services.SelectionConfirming
}

func (m Model) updateGarden(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The delete confirmation owns the keyboard until answered.
	if m.svc.Selection.Phase() == services.SelectionConfirming {
		switch msg.String() {
		case "y", "enter":
			_ = m.svc.Selection.Confirm()
			m.clampCursor()
		case "n", "esc":
			m.svc.Selection.Decline()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "z":
		m.svc.Zen.Toggle()
	case "t":
		m.themes.press(m.now())
	case "h":
		m.svc.Selection.Cancel()
		_ = m.svc.Coord.SwitchTo(domain.ViewHome)
		m.cursor = 0
	case "m":
		m.svc.Coord.ToggleMute()
	case "a":
		return m, m.openInput(inputGardenNote, "plant a note")
	case "s":
		m.svc.Selection.Toggle()
	case "esc":
		m.svc.Selection.Cancel()
	case "v":
		m.albumOpen = !m.albumOpen
		m.albumPage = 0
	case "[", "left":
		if m.albumOpen && m.albumPage > 0 {
			m.albumPage--
		}
	case "]", "right":
		if m.albumOpen && m.albumPage < len(m.svc.Garden.AlbumSpreads())-1 {
			m.albumPage++
		}
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		note := m.currentGardenNote()
		if note == nil {
			break
		}
		if m.svc.Selection.Phase() == services.SelectionActive {
			m.svc.Selection.Select(note.ID)
		} else {
			_ = m.svc.Garden.ToggleBloom(note.ID)
		}
	}
	return m, nil
}

// updateInput routes keystrokes into the active text prompt.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		switch m.mode {
		case inputSecret:
			m.svc.Bypass.Dismiss()
		case inputSearch:
			m.searching = ""
		case inputReminder:
			m.editIdx = -1
		case inputMoodNote:
			m.editID = ""
		}
		m.closeInput()
		return m, nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputSearch {
		m.searching = m.input.Value()
	}
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.mode {
	case inputSecret:
		if m.svc.Bypass.Submit(value) {
			m.unlocked = true
			m.closeInput()
			_ = m.svc.Coord.SwitchTo(domain.ViewHome)
			return m, nil
		}
	case inputMood:
		_, _ = m.svc.Moods.Add(value, "", "")
	case inputMoodNote:
		_ = m.svc.Moods.EditNote(m.editID, value)
		m.editID = ""
	case inputTaskText:
		m.taskText = value
		return m, m.openInput(inputTaskDate, "due date (YYYY-MM-DD, blank for none)")
	case inputTaskDate:
		m.taskDate = value
		return m, m.openInput(inputTaskTime, "due time (HH:MM, blank for none)")
	case inputTaskTime:
		_, _ = m.svc.Tasks.Add(m.taskText, m.taskDate, value)
		m.taskText = ""
		m.taskDate = ""
	case inputReminder:
		if m.editIdx >= 0 {
			_ = m.svc.Reminders.Update(m.editIdx, value)
			m.editIdx = -1
		} else {
			_ = m.svc.Reminders.Add(value)
		}
	case inputGardenNote:
		_, _ = m.svc.Garden.Add(value)
	case inputSearch:
		// Leave the filter applied.
	}

	m.closeInput()
	return m, nil
}

func (m *Model) openInput(mode inputMode, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.EchoMode = textinput.EchoNormal
	if mode == inputSecret {
		m.input.EchoMode = textinput.EchoPassword
	}
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m.input.Cursor.BlinkCmd()
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
}

// visibleTasks applies the live search filter.
func (m Model) visibleTasks() []domain.Task {
	return m.svc.Tasks.Search(m.searching)
}

func (m Model) currentMood() *domain.Mood {
	moods := m.svc.Moods.All()
	if m.cursor < len(moods) {
		return &moods[m.cursor]
	}
	return nil
}

func (m Model) currentTask() *domain.Task {
	tasks := m.visibleTasks()
	if m.cursor < len(tasks) {
		return &tasks[m.cursor]
	}
	return nil
}

func (m Model) currentReminderIndex() (int, bool) {
	if m.cursor < len(m.svc.Reminders.All()) {
		return m.cursor, true
	}
	return 0, false
}

func (m Model) currentGardenNote() *domain.GardenNote {
	notes := m.svc.Garden.All()
	if m.cursor < len(notes) {
		return &notes[m.cursor]
	}
	return nil
}

func (m *Model) clampCursor() {
	var n int
	switch m.screen.view {
	case domain.ViewGarden:
		n = len(m.svc.Garden.All())
	default:
		switch m.section {
		case sectionMoods:
			n = len(m.svc.Moods.All())
		case sectionTasks:
			n = len(m.visibleTasks())
		case sectionReminders:
			n = len(m.svc.Reminders.All())
		case sectionLetters:
			n = len(m.cfg.Letters)
		}
	}
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
