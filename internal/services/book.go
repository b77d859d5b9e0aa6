package services

import (
	"log"
	"time"

	"haven/internal/adapters/storage"
	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/ports"
)

// BookController opens and closes the book widget. The closed state
// persists across restarts; toggles are ignored for the length of one
// transition so the animation is never interrupted midway.
type BookController struct {
	store     ports.FlagStore
	presenter ports.Presenter
	logger    *log.Logger
	now       func() time.Time

	cooldown time.Duration
	closed   bool
	readyAt  time.Time
}

// NewBookController creates the controller. The book starts closed until
// Load restores the persisted state.
func NewBookController(
	store ports.FlagStore,
	presenter ports.Presenter,
	cfg config.BookConfig,
	logger *log.Logger,
	now func() time.Time,
) *BookController {
	return &BookController{
		store:     store,
		presenter: presenter,
		logger:    logger,
		now:       now,
		cooldown:  time.Duration(cfg.TransitionDuration),
		closed:    true,
	}
}

// Load restores the persisted closed state and renders it without
// animating.
func (b *BookController) Load() {
	b.store.Get(storage.KeyBookClosed, &b.closed)
	b.presenter.SetBookOpen(!b.closed)
}

// Closed reports whether the book is closed.
func (b *BookController) Closed() bool {
	return b.closed
}

// Toggle opens or closes the book. A toggle landing inside the previous
// transition returns ErrTransitionInProgress and changes nothing.
func (b *BookController) Toggle() error {
	now := b.now()
	if now.Before(b.readyAt) {
		return domain.ErrTransitionInProgress
	}

	b.closed = !b.closed
	b.readyAt = now.Add(b.cooldown)
	b.presenter.SetBookOpen(!b.closed)

	if err := b.store.Set(storage.KeyBookClosed, b.closed); err != nil {
		b.logger.Printf("failed to persist book state: %v", err)
	}
	return nil
}
