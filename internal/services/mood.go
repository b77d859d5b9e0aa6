package services

import (
	"encoding/json"
	"log"
	"time"

	"haven/internal/adapters/storage"
	"haven/internal/domain"
	"haven/internal/ports"
)

// MoodService manages the mood journal.
type MoodService struct {
	store  ports.FlagStore
	logger *log.Logger
	now    func() time.Time
	moods  []domain.Mood
}

// NewMoodService creates the service. Call Load before use.
func NewMoodService(store ports.FlagStore, logger *log.Logger, now func() time.Time) *MoodService {
	return &MoodService{store: store, logger: logger, now: now}
}

// Load restores persisted moods. Blobs written by earlier versions stored
// a bare string array; those entries are upgraded to full records with the
// default category and persisted back in the new shape.
func (s *MoodService) Load() {
	s.moods = nil

	raw, ok := s.store.Read(storage.KeyMoods)
	if !ok {
		return
	}

	var moods []domain.Mood
	if err := json.Unmarshal(raw, &moods); err == nil {
		for i := range moods {
			if moods[i].Category == "" {
				moods[i].Category = domain.DefaultMoodCategory
			}
			if moods[i].Intensity == "" {
				moods[i].Intensity = domain.IntensityMedium
			}
		}
		s.moods = moods
		return
	}

	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		s.logger.Printf("discarding unreadable mood journal: %v", err)
		return
	}

	for _, text := range legacy {
		mood, err := domain.NewMood(text, "", "", s.now())
		if err != nil {
			continue
		}
		s.moods = append(s.moods, *mood)
	}
	s.save()
}

// All returns the journal, newest first.
func (s *MoodService) All() []domain.Mood {
	return s.moods
}

// Add records a new mood entry.
func (s *MoodService) Add(text, category string, intensity domain.MoodIntensity) (*domain.Mood, error) {
	mood, err := domain.NewMood(text, category, intensity, s.now())
	if err != nil {
		return nil, err
	}
	s.moods = append([]domain.Mood{*mood}, s.moods...)
	s.save()
	return mood, nil
}

// CycleIntensity steps the entry's intensity low to medium to high and
// around again.
func (s *MoodService) CycleIntensity(id string) error {
	m := s.find(id)
	if m == nil {
		return domain.ErrNotFound
	}
	m.CycleIntensity()
	s.save()
	return nil
}

// EditNote replaces the free-form note attached to an entry.
func (s *MoodService) EditNote(id, note string) error {
	m := s.find(id)
	if m == nil {
		return domain.ErrNotFound
	}
	m.Note = note
	s.save()
	return nil
}

// Delete removes an entry.
func (s *MoodService) Delete(id string) error {
	for i := range s.moods {
		if s.moods[i].ID == id {
			s.moods = append(s.moods[:i], s.moods[i+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *MoodService) find(id string) *domain.Mood {
	for i := range s.moods {
		if s.moods[i].ID == id {
			return &s.moods[i]
		}
	}
	return nil
}

func (s *MoodService) save() {
	if err := s.store.Set(storage.KeyMoods, s.moods); err != nil {
		s.logger.Printf("failed to persist mood journal: %v", err)
	}
}
