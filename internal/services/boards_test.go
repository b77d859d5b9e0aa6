package services

import (
	"testing"

	"haven/internal/domain"
)

func TestBoardService_Categories(t *testing.T) {
	s := NewBoardService(newFakeStore(), quietLogger())
	s.Load()

	if err := s.AddCategory("places"); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	// Duplicate names collapse into one category.
	if err := s.AddCategory("places"); err != nil {
		t.Fatalf("AddCategory(dup) error = %v", err)
	}
	if len(s.Boards().Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(s.Boards().Categories))
	}

	if err := s.RemoveCategory("places"); err != nil {
		t.Fatalf("RemoveCategory() error = %v", err)
	}
	if err := s.RemoveCategory("places"); err != domain.ErrNotFound {
		t.Errorf("RemoveCategory(missing) error = %v, want ErrNotFound", err)
	}
}

func TestBoardService_Refs(t *testing.T) {
	s := NewBoardService(newFakeStore(), quietLogger())
	s.Load()

	// Pinning to an unknown category creates it.
	if err := s.AddRef("recipes", "lemon cake"); err != nil {
		t.Fatalf("AddRef() error = %v", err)
	}
	if err := s.AddRef("recipes", "miso soup"); err != nil {
		t.Fatalf("AddRef() error = %v", err)
	}

	c := s.Boards().Category("recipes")
	if c == nil || len(c.Refs) != 2 {
		t.Fatalf("category refs = %v, want 2 entries", c)
	}

	if err := s.RemoveRef("recipes", 0); err != nil {
		t.Fatalf("RemoveRef() error = %v", err)
	}
	c = s.Boards().Category("recipes")
	if len(c.Refs) != 1 || c.Refs[0] != "miso soup" {
		t.Errorf("refs after remove = %v, want [miso soup]", c.Refs)
	}

	if err := s.RemoveRef("recipes", 9); err != domain.ErrNotFound {
		t.Errorf("RemoveRef(out of range) error = %v, want ErrNotFound", err)
	}
	if err := s.AddRef("recipes", "  "); err != domain.ErrEmptyText {
		t.Errorf("AddRef(blank) error = %v, want ErrEmptyText", err)
	}
}
