package services

import "sort"

// SelectionPhase is the state of a list's selection mode.
type SelectionPhase int

const (
	// SelectionInactive means browsing normally.
	SelectionInactive SelectionPhase = iota

	// SelectionActive means selection mode is on and items may be marked.
	SelectionActive

	// SelectionConfirming means marked items are awaiting a delete
	// confirmation.
	SelectionConfirming
)

// SelectionController runs the mark-then-confirm flow for deleting list
// items. One controller exists per list; the marked set is never
// persisted. Leaving selection mode with items still marked demands a
// confirmation before anything is deleted; declining keeps the items and
// the marks.
type SelectionController struct {
	phase    SelectionPhase
	selected map[string]struct{}
	deleteFn func(id string) error
}

// NewSelectionController creates the controller. deleteFn is called with
// each marked id when the user confirms.
func NewSelectionController(deleteFn func(id string) error) *SelectionController {
	return &SelectionController{
		selected: make(map[string]struct{}),
		deleteFn: deleteFn,
	}
}

// Phase returns the current phase.
func (s *SelectionController) Phase() SelectionPhase {
	return s.phase
}

// Selected reports whether the item is marked.
func (s *SelectionController) Selected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Count returns the number of marked items.
func (s *SelectionController) Count() int {
	return len(s.selected)
}

// Toggle enters or leaves selection mode. Entering clears any prior
// marks; leaving with marks still set moves to the confirmation phase
// instead of exiting outright.
func (s *SelectionController) Toggle() {
	switch s.phase {
	case SelectionInactive:
		s.selected = make(map[string]struct{})
		s.phase = SelectionActive
	case SelectionActive:
		if len(s.selected) > 0 {
			s.phase = SelectionConfirming
			return
		}
		s.phase = SelectionInactive
	case SelectionConfirming:
		// Confirmation must be answered, not toggled away.
	}
}

// Select marks an item. Selecting a marked item unmarks it.
func (s *SelectionController) Select(id string) {
	if s.phase != SelectionActive {
		return
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// Request marks a single item and asks for confirmation immediately.
// Direct delete keys go through here so nothing is removed without the
// confirm gate.
func (s *SelectionController) Request(id string) {
	if s.phase == SelectionConfirming {
		return
	}
	if s.phase == SelectionInactive {
		s.selected = make(map[string]struct{})
	}
	s.selected[id] = struct{}{}
	s.phase = SelectionConfirming
}

// Confirm deletes every marked item and exits selection mode. The first
// delete failure is returned; later deletes still run.
func (s *SelectionController) Confirm() error {
	if s.phase != SelectionConfirming {
		return nil
	}
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var firstErr error
	for _, id := range ids {
		if err := s.deleteFn(id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.reset()
	return firstErr
}

// Decline keeps the marked items and returns to selection mode with the
// marks intact.
func (s *SelectionController) Decline() {
	if s.phase != SelectionConfirming {
		return
	}
	s.phase = SelectionActive
}

// Cancel abandons selection mode from any phase without deleting.
func (s *SelectionController) Cancel() {
	s.reset()
}

func (s *SelectionController) reset() {
	s.phase = SelectionInactive
	s.selected = make(map[string]struct{})
}
