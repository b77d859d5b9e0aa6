package services

import (
	"log"
	"strings"

	"haven/internal/adapters/storage"
	"haven/internal/domain"
	"haven/internal/ports"
)

// BoardService manages the pinned boards of saved references.
type BoardService struct {
	store  ports.FlagStore
	logger *log.Logger
	boards domain.BoardSet
}

// NewBoardService creates the service. Call Load before use.
func NewBoardService(store ports.FlagStore, logger *log.Logger) *BoardService {
	return &BoardService{store: store, logger: logger}
}

// Load restores the persisted boards.
func (s *BoardService) Load() {
	s.boards = domain.BoardSet{}
	s.store.Get(storage.KeyBoards, &s.boards)
}

// Boards returns the full board set.
func (s *BoardService) Boards() *domain.BoardSet {
	return &s.boards
}

// AddCategory creates an empty category. Adding an existing name is a
// no-op.
func (s *BoardService) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyText
	}
	if s.boards.Category(name) != nil {
		return nil
	}
	s.boards.Categories = append(s.boards.Categories, domain.BoardCategory{Name: name})
	s.save()
	return nil
}

// RemoveCategory deletes a category and everything pinned to it.
func (s *BoardService) RemoveCategory(name string) error {
	for i := range s.boards.Categories {
		if s.boards.Categories[i].Name == name {
			s.boards.Categories = append(s.boards.Categories[:i], s.boards.Categories[i+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// AddRef pins a reference under a category, creating the category when it
// does not exist yet.
func (s *BoardService) AddRef(category, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.ErrEmptyText
	}
	c := s.boards.Category(category)
	if c == nil {
		if err := s.AddCategory(category); err != nil {
			return err
		}
		c = s.boards.Category(category)
	}
	c.Refs = append(c.Refs, ref)
	s.save()
	return nil
}

// RemoveRef unpins the reference at idx from a category.
func (s *BoardService) RemoveRef(category string, idx int) error {
	c := s.boards.Category(category)
	if c == nil || idx < 0 || idx >= len(c.Refs) {
		return domain.ErrNotFound
	}
	c.Refs = append(c.Refs[:idx], c.Refs[idx+1:]...)
	s.save()
	return nil
}

func (s *BoardService) save() {
	if err := s.store.Set(storage.KeyBoards, s.boards); err != nil {
		s.logger.Printf("failed to persist boards: %v", err)
	}
}
