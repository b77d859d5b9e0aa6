// Package storage persists widget state as one JSON blob per key.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Keys under which application state is stored.
const (
	KeyReminders   = "reminders"
	KeyMoods       = "moods"
	KeyTasks       = "tasks"
	KeyBoards      = "boards"
	KeyGardenNotes = "garden_notes"
	KeyBookClosed  = "book_closed"
	KeyAudioMuted  = "audio_muted"

	// KeyCountdownBegan is stamped on first launch so the gate can show
	// how much of the wait has already passed.
	KeyCountdownBegan = "countdown_began"
)

// FlagStore is a diskv-backed key/value store. Every key holds one JSON
// blob; a blob that is missing or fails to decode is reported as absent
// so callers fall back to defaults instead of failing to start.
type FlagStore struct {
	d      *diskv.Diskv
	logger *log.Logger
}

// NewFlagStore opens (or creates) the store rooted at basePath.
func NewFlagStore(basePath string) (*FlagStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FlagStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		logger: log.New(os.Stderr, "haven: ", log.LstdFlags),
	}, nil
}

// Get unmarshals the blob at key into out. It returns false when the key
// is missing or the blob does not fit out's shape.
func (s *FlagStore) Get(key string, out any) bool {
	data, ok := s.Read(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Printf("discarding unreadable state at %q: %v", key, err)
		return false
	}
	return true
}

// Read returns the raw blob at key.
func (s *FlagStore) Read(key string) ([]byte, bool) {
	data, err := s.d.Read(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Printf("failed to read state at %q: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

// Set marshals v and writes it at key.
func (s *FlagStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal state for %q: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write state at %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob at key. Deleting a missing key is not an error.
func (s *FlagStore) Delete(key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete state at %q: %w", key, err)
	}
	return nil
}
