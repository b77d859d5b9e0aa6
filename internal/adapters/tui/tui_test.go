package tui

import (
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/services"
)

// memStore is an in-memory FlagStore for wiring test models.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (s *memStore) Get(key string, out any) bool {
	data, ok := s.blobs[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *memStore) Read(key string) ([]byte, bool) {
	data, ok := s.blobs[key]
	return data, ok
}

func (s *memStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.blobs[key] = data
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(target time.Time, start domain.View) (Model, *testClock) {
	clock := &testClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	cfg := config.DefaultConfig()
	cfg.Bypass.Secret = "petrichor"

	store := newMemStore()
	logger := log.New(io.Discard, "", 0)
	scr := NewScreen()

	svc := Services{
		Engine:    services.NewCountdownEngine(target, clock.t, clock.Now, nil),
		Coord:     services.NewCoordinator(scr, scr, store, cfg.Views, logger, clock.Now),
		Zen:       services.NewZenController(cfg.Zen, nil, clock.Now),
		Book:      services.NewBookController(store, scr, cfg.Book, logger, clock.Now),
		Bypass:    services.NewBypassGate(cfg.Bypass, clock.Now),
		Moods:     services.NewMoodService(store, logger, clock.Now),
		Tasks:     services.NewTaskService(store, logger, clock.Now),
		Reminders: services.NewReminderService(store, logger, clock.Now),
		Garden:    services.NewGardenService(store, logger, clock.Now),
		Boards:    services.NewBoardService(store, logger),
	}
	svc.Selection = services.NewSelectionController(svc.Garden.Delete)
	svc.MoodSel = services.NewSelectionController(svc.Moods.Delete)
	svc.TaskSel = services.NewSelectionController(svc.Tasks.Delete)

	svc.Coord.Load()
	svc.Book.Load()
	svc.Moods.Load()
	svc.Tasks.Load()
	svc.Reminders.Load()
	svc.Garden.Load()
	svc.Boards.Load()
	svc.Coord.Start(start)

	return NewModel(svc, scr, cfg, clock.Now), clock
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func tick(m Model, clock *testClock, d time.Duration) Model {
	next, _ := m.Update(tickMsg(clock.Advance(d)))
	return next.(Model)
}

func TestModel_GateOpensWhenTargetPasses(t *testing.T) {
	clockStart := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m, clock := newTestModel(clockStart.Add(2*time.Second), domain.ViewCountdown)

	m = tick(m, clock, time.Second)
	if m.screen.view != domain.ViewCountdown {
		t.Fatal("gate opened before the target")
	}

	m = tick(m, clock, 2*time.Second)
	if m.screen.view != domain.ViewHome {
		t.Fatalf("view = %v after the target passed, want home", m.screen.view)
	}
}

func TestModel_BypassUnlocksEarly(t *testing.T) {
	target := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	m, clock := newTestModel(target, domain.ViewCountdown)

	m = press(m, "enter", "enter", "enter")
	if m.mode != inputSecret {
		t.Fatal("secret prompt not shown after three gestures")
	}

	clock.Advance(2 * time.Second)
	m = typeText(m, "petrichor")
	m = press(m, "enter")

	if m.screen.view != domain.ViewHome {
		t.Fatalf("view = %v after correct secret, want home", m.screen.view)
	}
}

func TestModel_WrongSecretStaysLocked(t *testing.T) {
	target := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	m, clock := newTestModel(target, domain.ViewCountdown)

	m = press(m, "enter", "enter", "enter")
	clock.Advance(2 * time.Second)
	m = typeText(m, "wrong")
	m = press(m, "enter")

	if m.screen.view != domain.ViewCountdown {
		t.Fatal("wrong secret opened the gate")
	}
	if m.mode != inputNone {
		t.Error("prompt still open after a wrong secret")
	}

	// The gate keeps working on later ticks without unlocking.
	m = tick(m, clock, time.Second)
	if m.screen.view != domain.ViewCountdown {
		t.Error("gate opened on a later tick after a wrong secret")
	}
}

func TestModel_HomeWidgetFlow(t *testing.T) {
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m, clock := newTestModel(target, domain.ViewHome)

	// Add a mood through the prompt.
	m = press(m, "a")
	m = typeText(m, "quietly pleased")
	m = press(m, "enter")
	if len(m.svc.Moods.All()) != 1 {
		t.Fatal("mood not added through the prompt")
	}

	// Move to tasks and add one, skipping both deadline prompts.
	m = press(m, "tab", "a")
	m = typeText(m, "sweep the steps")
	m = press(m, "enter", "enter", "enter")
	tasks := m.svc.Tasks.All()
	if len(tasks) != 1 || tasks[0].Text != "sweep the steps" {
		t.Fatalf("tasks = %v after prompt flow", tasks)
	}
	if tasks[0].Deadline != nil {
		t.Error("blank deadline prompts still set a deadline")
	}

	// Toggle it done.
	m = press(m, "enter")
	if !m.svc.Tasks.All()[0].Completed {
		t.Error("enter did not toggle the task")
	}

	// Zen hides everything and comes back with z.
	m = press(m, "z")
	if !m.svc.Zen.Active() {
		t.Fatal("z did not enter zen mode")
	}
	m = press(m, "x")
	if len(m.svc.Tasks.All()) != 1 {
		t.Error("keys leaked through zen mode")
	}
	m = press(m, "z")
	if m.svc.Zen.Active() {
		t.Error("z did not exit zen mode")
	}

	_ = clock
}

func TestModel_HomeDeleteAsksForConfirmation(t *testing.T) {
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ := newTestModel(target, domain.ViewHome)

	m = press(m, "a")
	m = typeText(m, "restless")
	m = press(m, "enter")
	if len(m.svc.Moods.All()) != 1 {
		t.Fatal("mood not added through the prompt")
	}

	// x alone never deletes; it raises the confirmation.
	m = press(m, "x")
	if m.svc.MoodSel.Phase() != services.SelectionConfirming {
		t.Fatal("x did not ask for confirmation")
	}
	if len(m.svc.Moods.All()) != 1 {
		t.Fatal("x deleted the mood before confirmation")
	}

	// Declining keeps the mood.
	m = press(m, "n")
	if len(m.svc.Moods.All()) != 1 {
		t.Fatal("declined confirmation still deleted the mood")
	}

	// Asking again and confirming deletes it.
	m = press(m, "x", "y")
	if len(m.svc.Moods.All()) != 0 {
		t.Error("confirmed deletion kept the mood")
	}

	// Reminders go through the same gate.
	m = press(m, "tab", "tab", "a")
	m = typeText(m, "water the fern")
	m = press(m, "enter")
	m = press(m, "x")
	if len(m.svc.Reminders.All()) != 1 {
		t.Fatal("x deleted the reminder before confirmation")
	}
	m = press(m, "esc")
	if len(m.svc.Reminders.All()) != 1 {
		t.Fatal("declined confirmation still deleted the reminder")
	}
	m = press(m, "x", "enter")
	if len(m.svc.Reminders.All()) != 0 {
		t.Error("confirmed deletion kept the reminder")
	}
}

func TestModel_MoodNoteEscClearsEdit(t *testing.T) {
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ := newTestModel(target, domain.ViewHome)

	m = press(m, "a")
	m = typeText(m, "wistful")
	m = press(m, "enter")

	m = press(m, "e")
	if m.mode != inputMoodNote || m.editID == "" {
		t.Fatal("e did not open the note prompt for the mood")
	}

	m = press(m, "esc")
	if m.mode != inputNone {
		t.Fatal("esc did not close the note prompt")
	}
	if m.editID != "" {
		t.Error("esc left the edit target set")
	}
}

func TestModel_TaskMultiSelectDelete(t *testing.T) {
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ := newTestModel(target, domain.ViewHome)

	m = press(m, "tab")
	for _, text := range []string{"sweep the steps", "wind the clock"} {
		m = press(m, "a")
		m = typeText(m, text)
		m = press(m, "enter", "enter", "enter")
	}
	if len(m.svc.Tasks.All()) != 2 {
		t.Fatal("tasks not added through the prompt")
	}

	// Mark both, leave selection mode, confirm.
	m = press(m, "s", "enter", "j", "enter")
	if m.svc.TaskSel.Count() != 2 {
		t.Fatalf("marked %d tasks, want 2", m.svc.TaskSel.Count())
	}
	m = press(m, "s")
	if m.svc.TaskSel.Phase() != services.SelectionConfirming {
		t.Fatal("leaving selection with marks did not ask for confirmation")
	}
	m = press(m, "y")
	if len(m.svc.Tasks.All()) != 0 {
		t.Errorf("tasks = %v after confirmed delete, want none", m.svc.Tasks.All())
	}
	if m.svc.TaskSel.Phase() != services.SelectionInactive {
		t.Error("selection mode survived the confirmed delete")
	}
}

func TestModel_GardenSelectionFlow(t *testing.T) {
	target := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m, clock := newTestModel(target, domain.ViewGarden)

	m = press(m, "a")
	m = typeText(m, "a kept promise")
	m = press(m, "enter")
	if len(m.svc.Garden.All()) != 1 {
		t.Fatal("garden note not planted")
	}

	// Bloom it.
	m = press(m, "enter")
	if !m.svc.Garden.All()[0].Bloomed {
		t.Fatal("enter did not bloom the note")
	}

	// Select it, leave selection mode, decline the confirmation.
	m = press(m, "s", "enter", "s")
	if m.svc.Selection.Phase() != services.SelectionConfirming {
		t.Fatal("leaving selection with a mark did not ask for confirmation")
	}
	m = press(m, "n")
	if len(m.svc.Garden.All()) != 1 {
		t.Fatal("declined confirmation still deleted the note")
	}
	if m.svc.Selection.Phase() != services.SelectionActive {
		t.Fatal("decline did not return to selection mode")
	}

	// The mark survived the decline; leaving again confirms for real.
	m = press(m, "s", "y")
	if len(m.svc.Garden.All()) != 0 {
		t.Error("confirmed deletion kept the note")
	}

	_ = clock
}

func TestThemeSwitcher_TriplePressOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	ts := newThemeSwitcher(cfg.Theme, cfg.Zen)

	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if ts.night(day) {
		t.Fatal("night(noon) = true")
	}
	if ts.night(time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)) == false {
		t.Fatal("night(22:00) = false")
	}

	// Two presses then a pause change nothing.
	ts.press(day)
	ts.press(day.Add(200 * time.Millisecond))
	ts.tick(day.Add(2 * time.Second))
	if ts.press(day.Add(2 * time.Second)) {
		t.Fatal("stale streak still counted")
	}

	// A full streak flips to the night palette at noon.
	ts.press(day.Add(2100 * time.Millisecond))
	if !ts.press(day.Add(2200 * time.Millisecond)) {
		t.Fatal("third press inside the window did not toggle")
	}
	if !ts.night(day) {
		t.Error("override did not force the night palette")
	}
}

func TestScreen_RejectsUnknownView(t *testing.T) {
	s := NewScreen()
	if err := s.ShowView(domain.View("attic")); err == nil {
		t.Error("ShowView accepted an unknown view")
	}
	if err := s.ShowView(domain.ViewGarden); err != nil {
		t.Errorf("ShowView(garden) error = %v", err)
	}
	if s.view != domain.ViewGarden {
		t.Errorf("view = %v, want garden", s.view)
	}
}

func TestRenderBigDigits_NarrowFallback(t *testing.T) {
	out := renderBigDigits("01 02 03 04", "#ffffff", 20)
	if out == "" {
		t.Fatal("empty render")
	}
	// One line only when the terminal is narrow.
	for _, r := range out {
		if r == '\n' {
			t.Fatal("narrow render spans multiple lines")
		}
	}
}
