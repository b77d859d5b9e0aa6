package services

import (
	"log"
	"math/rand"
	"time"

	"haven/internal/adapters/storage"
	"haven/internal/domain"
	"haven/internal/ports"
)

// specimensPerSpread is how many pressed flowers fit on one album spread.
const specimensPerSpread = 2

// GardenService manages the planted notes and their pressed-flower album.
type GardenService struct {
	store  ports.FlagStore
	logger *log.Logger
	now    func() time.Time
	pick   func(n int) int
	notes  []domain.GardenNote
}

// NewGardenService creates the service. Call Load before use.
func NewGardenService(store ports.FlagStore, logger *log.Logger, now func() time.Time) *GardenService {
	return &GardenService{
		store:  store,
		logger: logger,
		now:    now,
		pick:   rand.Intn,
	}
}

// Load restores persisted garden notes.
func (s *GardenService) Load() {
	s.notes = nil
	s.store.Get(storage.KeyGardenNotes, &s.notes)
}

// All returns the notes in planting order.
func (s *GardenService) All() []domain.GardenNote {
	return s.notes
}

// Add plants a note with a randomly assigned flower species.
func (s *GardenService) Add(text string) (*domain.GardenNote, error) {
	flower := domain.FlowerTypes[s.pick(len(domain.FlowerTypes))]
	note, err := domain.NewGardenNote(text, flower, s.now())
	if err != nil {
		return nil, err
	}
	s.notes = append(s.notes, *note)
	s.save()
	return note, nil
}

// ToggleBloom opens a bud or closes a bloomed flower.
func (s *GardenService) ToggleBloom(id string) error {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].ToggleBloom()
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes a note from the garden.
func (s *GardenService) Delete(id string) error {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// AlbumSpreads chunks the notes into album spreads, oldest first.
func (s *GardenService) AlbumSpreads() [][]domain.GardenNote {
	var spreads [][]domain.GardenNote
	for i := 0; i < len(s.notes); i += specimensPerSpread {
		end := i + specimensPerSpread
		if end > len(s.notes) {
			end = len(s.notes)
		}
		spreads = append(spreads, s.notes[i:end])
	}
	return spreads
}

func (s *GardenService) save() {
	if err := s.store.Set(storage.KeyGardenNotes, s.notes); err != nil {
		s.logger.Printf("failed to persist garden notes: %v", err)
	}
}
