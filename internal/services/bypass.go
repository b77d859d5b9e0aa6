package services

import (
	"strings"
	"time"

	"haven/internal/config"
)

// BypassGate lets the user unlock the dashboard before the countdown ends.
// Repeating the activation gesture enough times inside the idle window
// reveals a secret prompt; a pause between gestures resets the count. An
// empty configured secret disables the gate entirely.
type BypassGate struct {
	secret     string
	required   int
	idleWindow time.Duration
	now        func() time.Time

	activations  int
	resetAt      time.Time
	inputVisible bool
}

// NewBypassGate creates the gate from configuration.
func NewBypassGate(cfg config.BypassConfig, now func() time.Time) *BypassGate {
	return &BypassGate{
		secret:     cfg.Secret,
		required:   cfg.RequiredActivations,
		idleWindow: time.Duration(cfg.IdleWindow),
		now:        now,
	}
}

// Enabled reports whether a secret is configured.
func (g *BypassGate) Enabled() bool {
	return g.secret != ""
}

// InputVisible reports whether the secret prompt is showing.
func (g *BypassGate) InputVisible() bool {
	return g.inputVisible
}

// Activate records one activation gesture. It returns true on the gesture
// that reveals the secret prompt.
func (g *BypassGate) Activate() bool {
	if !g.Enabled() || g.inputVisible {
		return false
	}

	now := g.now()
	g.activations++
	g.resetAt = now.Add(g.idleWindow)

	if g.activations >= g.required {
		g.activations = 0
		g.resetAt = time.Time{}
		g.inputVisible = true
		return true
	}
	return false
}

// Tick resets a partial gesture streak once the idle window passes.
func (g *BypassGate) Tick(now time.Time) {
	if !g.resetAt.IsZero() && !now.Before(g.resetAt) {
		g.activations = 0
		g.resetAt = time.Time{}
	}
}

// Submit checks the entered secret. Surrounding whitespace is trimmed, the
// comparison is case sensitive, and a mismatch silently hides the prompt.
func (g *BypassGate) Submit(input string) bool {
	g.inputVisible = false
	if !g.Enabled() {
		return false
	}
	return strings.TrimSpace(input) == g.secret
}

// Dismiss hides the secret prompt without checking anything.
func (g *BypassGate) Dismiss() {
	g.inputVisible = false
}
