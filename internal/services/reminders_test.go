package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"haven/internal/domain"
)

func newTestReminders() *ReminderService {
	clock := newFakeClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	return NewReminderService(newFakeStore(), quietLogger(), clock.Now)
}

func TestReminderService_CRUD(t *testing.T) {
	s := newTestReminders()
	s.Load()

	if err := s.Add("water the plants"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("call home"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("  "); err != domain.ErrEmptyText {
		t.Errorf("Add(blank) error = %v, want ErrEmptyText", err)
	}

	if err := s.Update(1, "call home tonight"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if s.All()[1] != "call home tonight" {
		t.Errorf("All()[1] = %q after update", s.All()[1])
	}
	if err := s.Update(5, "x"); err != domain.ErrNotFound {
		t.Errorf("Update(out of range) error = %v, want ErrNotFound", err)
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(s.All()) != 1 {
		t.Fatalf("len(All()) = %d after remove, want 1", len(s.All()))
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if len(s.All()) != 0 {
		t.Error("reminders left after Clear")
	}
}

func TestReminderService_ExportImportRoundTrip(t *testing.T) {
	s := newTestReminders()
	s.Load()
	if err := s.Add("one"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("two"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	dir := t.TempDir()
	path, err := s.Export(dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Base(path) != "reminders-2026-02-01.json" {
		t.Errorf("export file = %q, want dated name", filepath.Base(path))
	}

	fresh := newTestReminders()
	fresh.Load()
	if err := fresh.Import(path); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	got := fresh.All()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("All() after import = %v, want [one two]", got)
	}
}

func TestReminderService_ImportRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "object", data: `{"reminders":["one"]}`},
		{name: "mixed array", data: `["one", 2]`},
		{name: "not json", data: `reminders`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "import.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatalf("seed write error = %v", err)
			}

			s := newTestReminders()
			s.Load()
			if err := s.Add("kept"); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			if err := s.Import(path); !errors.Is(err, domain.ErrInvalidImport) {
				t.Errorf("Import() error = %v, want ErrInvalidImport", err)
			}
			if len(s.All()) != 1 || s.All()[0] != "kept" {
				t.Error("rejected import modified the list")
			}
		})
	}
}
