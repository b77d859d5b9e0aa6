package services

import (
	"fmt"
	"log"
	"time"

	"haven/internal/adapters/storage"
	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/ports"
)

// SectionCount is the number of dashboard sections revealed on a stagger
// after entering the home view.
const SectionCount = 4

// Coordinator owns the top-level view state machine. Exactly one view is
// active at any time; switches are throttled while a transition settles,
// and ambient audio follows whichever view owns it.
type Coordinator struct {
	presenter ports.Presenter
	audio     ports.AmbientAudio
	store     ports.FlagStore
	logger    *log.Logger
	now       func() time.Time

	state         domain.ViewState
	transition    time.Duration
	gardenEnabled bool
	muted         bool

	sectionsRevealed int
	revealStep       time.Duration
	nextRevealAt     time.Time

	homeIdle   time.Duration
	gardenIdle time.Duration
	idleAt     time.Time
}

// NewCoordinator wires the view state machine to its presenter and audio
// sink. Call Load then Start before ticking.
func NewCoordinator(
	presenter ports.Presenter,
	audio ports.AmbientAudio,
	store ports.FlagStore,
	cfg config.ViewsConfig,
	logger *log.Logger,
	now func() time.Time,
) *Coordinator {
	return &Coordinator{
		presenter:     presenter,
		audio:         audio,
		store:         store,
		logger:        logger,
		now:           now,
		transition:    time.Duration(cfg.TransitionDuration),
		gardenEnabled: cfg.GardenEnabled,
		revealStep:    time.Duration(cfg.SectionRevealStep),
		homeIdle:      time.Duration(cfg.HomeIdleTimeout),
		gardenIdle:    time.Duration(cfg.GardenIdleTimeout),
	}
}

// Load restores the persisted mute flag.
func (c *Coordinator) Load() {
	c.store.Get(storage.KeyAudioMuted, &c.muted)
}

// Start activates the initial view without throttling and arms the
// per-view timers.
func (c *Coordinator) Start(v domain.View) {
	now := c.now()
	c.state = domain.ViewState{ActiveView: v, LastSwitchTime: now}
	if err := c.presenter.ShowView(v); err != nil {
		c.logger.Printf("failed to show initial view %s: %v", domain.GetViewLabel(v), err)
	}
	c.applyAudio()
	if v == domain.ViewHome {
		c.beginReveal(now)
	}
	c.armIdle(now)
}

// ActiveView returns the currently active view.
func (c *Coordinator) ActiveView() domain.View {
	return c.state.ActiveView
}

// SwitchTo moves to the given view. Switching to the already active view
// is a no-op. Requests arriving while a previous transition settles return
// ErrTransitionInProgress and leave the current view untouched, as does a
// presenter failure.
func (c *Coordinator) SwitchTo(v domain.View) error {
	if v == c.state.ActiveView {
		return nil
	}
	if v == domain.ViewGarden && !c.gardenEnabled {
		return domain.ErrViewUnavailable
	}

	now := c.now()
	if now.Sub(c.state.LastSwitchTime) < c.transition {
		return domain.ErrTransitionInProgress
	}

	if err := c.presenter.ShowView(v); err != nil {
		return fmt.Errorf("failed to switch to %s: %w", domain.GetViewLabel(v), err)
	}

	c.state = domain.ViewState{ActiveView: v, LastSwitchTime: now}
	c.applyAudio()
	if v == domain.ViewHome {
		c.beginReveal(now)
	}
	c.armIdle(now)
	return nil
}

// Activity notes user input on the active view and pushes the inactivity
// deadline forward.
func (c *Coordinator) Activity() {
	c.armIdle(c.now())
}

// Muted reports whether ambient audio is muted.
func (c *Coordinator) Muted() bool {
	return c.muted
}

// ToggleMute flips and persists the ambient mute flag.
func (c *Coordinator) ToggleMute() {
	c.muted = !c.muted
	if err := c.store.Set(storage.KeyAudioMuted, c.muted); err != nil {
		c.logger.Printf("failed to persist mute flag: %v", err)
	}
	c.applyAudio()
}

// Tick drives the staggered section reveal and the inactivity switch. It
// is safe to call every tick; due work fires once and disarms itself.
func (c *Coordinator) Tick(now time.Time) {
	for !c.nextRevealAt.IsZero() && !now.Before(c.nextRevealAt) {
		c.presenter.RevealSection(c.sectionsRevealed)
		c.sectionsRevealed++
		if c.sectionsRevealed >= SectionCount {
			c.nextRevealAt = time.Time{}
			break
		}
		c.nextRevealAt = c.nextRevealAt.Add(c.revealStep)
	}

	if !c.idleAt.IsZero() && !now.Before(c.idleAt) {
		c.idleAt = time.Time{}
		target := domain.ViewGarden
		if c.state.ActiveView == domain.ViewGarden {
			target = domain.ViewHome
		}
		if err := c.SwitchTo(target); err != nil {
			// Try again next idle period rather than spinning every tick.
			c.armIdle(now)
		}
	}
}

// applyAudio plays ambient audio only while the garden view is active and
// the mute flag is off.
func (c *Coordinator) applyAudio() {
	c.audio.SetPlaying(c.state.ActiveView == domain.ViewGarden && !c.muted)
}

// beginReveal schedules the staggered section reveal. Sections reveal once
// per process; re-entering the home view never replays the stagger.
func (c *Coordinator) beginReveal(now time.Time) {
	if c.sectionsRevealed >= SectionCount || !c.nextRevealAt.IsZero() {
		return
	}
	c.nextRevealAt = now.Add(c.revealStep)
}

// armIdle sets the inactivity deadline for the active view. The countdown
// view has no inactivity behavior.
func (c *Coordinator) armIdle(now time.Time) {
	switch c.state.ActiveView {
	case domain.ViewHome:
		if c.gardenEnabled && c.homeIdle > 0 {
			c.idleAt = now.Add(c.homeIdle)
			return
		}
	case domain.ViewGarden:
		if c.gardenIdle > 0 {
			c.idleAt = now.Add(c.gardenIdle)
			return
		}
	}
	c.idleAt = time.Time{}
}
