package tui

import (
	"haven/internal/domain"
	"haven/internal/services"
)

// Screen is the render-side state the coordinator drives. It is shared by
// pointer between the coordinator and the bubbletea model so Presenter
// calls survive the model being copied between Update passes.
type Screen struct {
	view         domain.View
	revealed     [services.SectionCount]bool
	bookOpen     bool
	audioPlaying bool
}

// NewScreen creates a screen showing the countdown gate.
func NewScreen() *Screen {
	return &Screen{view: domain.ViewCountdown}
}

// ShowView implements ports.Presenter.
func (s *Screen) ShowView(v domain.View) error {
	switch v {
	case domain.ViewCountdown, domain.ViewHome, domain.ViewGarden:
		s.view = v
		return nil
	}
	return domain.ErrViewUnavailable
}

// RevealSection implements ports.Presenter.
func (s *Screen) RevealSection(idx int) {
	if idx >= 0 && idx < len(s.revealed) {
		s.revealed[idx] = true
	}
}

// SetBookOpen implements ports.Presenter.
func (s *Screen) SetBookOpen(open bool) {
	s.bookOpen = open
}

// SetPlaying implements ports.AmbientAudio.
func (s *Screen) SetPlaying(playing bool) {
	s.audioPlaying = playing
}
