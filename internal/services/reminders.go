package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"haven/internal/adapters/storage"
	"haven/internal/domain"
	"haven/internal/ports"
)

// ReminderService manages the short free-form reminder list.
type ReminderService struct {
	store  ports.FlagStore
	logger *log.Logger
	now    func() time.Time
	items  []string
}

// NewReminderService creates the service. Call Load before use.
func NewReminderService(store ports.FlagStore, logger *log.Logger, now func() time.Time) *ReminderService {
	return &ReminderService{store: store, logger: logger, now: now}
}

// Load restores persisted reminders.
func (s *ReminderService) Load() {
	s.items = nil
	s.store.Get(storage.KeyReminders, &s.items)
}

// All returns the reminders in order.
func (s *ReminderService) All() []string {
	return s.items
}

// Add appends a reminder.
func (s *ReminderService) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyText
	}
	s.items = append(s.items, text)
	return s.save()
}

// Update replaces the reminder at idx.
func (s *ReminderService) Update(idx int, text string) error {
	if idx < 0 || idx >= len(s.items) {
		return domain.ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyText
	}
	s.items[idx] = text
	return s.save()
}

// Remove deletes the reminder at idx.
func (s *ReminderService) Remove(idx int) error {
	if idx < 0 || idx >= len(s.items) {
		return domain.ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.save()
}

// Clear deletes every reminder.
func (s *ReminderService) Clear() error {
	s.items = nil
	return s.save()
}

// Export writes the reminders to a dated JSON file in dir and returns the
// path.
func (s *ReminderService) Export(dir string) (string, error) {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reminders: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("reminders-%s.json", s.now().Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// Import replaces the reminders with the contents of a JSON file. Anything
// other than an array of strings is rejected without touching the current
// list.
func (s *ReminderService) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.ErrInvalidImport
	}

	s.items = items
	return s.save()
}

func (s *ReminderService) save() error {
	if err := s.store.Set(storage.KeyReminders, s.items); err != nil {
		s.logger.Printf("failed to persist reminders: %v", err)
		return err
	}
	return nil
}
