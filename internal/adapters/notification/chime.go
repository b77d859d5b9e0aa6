// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"haven/internal/config"
)

// Chime emits one-shot desktop notifications for mode boundaries.
type Chime struct {
	cfg *config.NotificationConfig
}

// New creates a new chime with the given configuration.
func New(cfg *config.NotificationConfig) *Chime {
	return &Chime{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (c *Chime) Notify(title, message string) error {
	if c.cfg == nil || !c.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// CountdownComplete announces that the countdown target has been reached.
func (c *Chime) CountdownComplete() {
	_ = c.Notify("🕰 It's time", "The countdown is over. Welcome home.")
}

// ZenStart announces quiet mode starting.
func (c *Chime) ZenStart() {
	_ = c.Notify("🌙 Zen mode", "Everything is tucked away for a while.")
}

// ZenEnd announces quiet mode ending.
func (c *Chime) ZenEnd() {
	_ = c.Notify("☀ Welcome back", "Zen mode has ended.")
}

// IsEnabled returns true if notifications are enabled.
func (c *Chime) IsEnabled() bool {
	return c.cfg != nil && c.cfg.Enabled
}
