package domain

import (
	"time"
)

// AmbientFlag is the state of one toggle-able ambient mode (zen, book,
// selection). AutoExitAt is only set while Active is true; clearing Active
// must also clear any pending auto-exit.
type AmbientFlag struct {
	Active     bool
	EnteredAt  time.Time
	AutoExitAt time.Time
}

// Enter activates the flag and stamps the entry time.
func (f *AmbientFlag) Enter(now time.Time) {
	f.Active = true
	f.EnteredAt = now
}

// Exit deactivates the flag and cancels any pending auto-exit.
func (f *AmbientFlag) Exit() {
	f.Active = false
	f.EnteredAt = time.Time{}
	f.AutoExitAt = time.Time{}
}

// AutoExitDue reports whether a scheduled auto-exit has come due.
func (f *AmbientFlag) AutoExitDue(now time.Time) bool {
	return f.Active && !f.AutoExitAt.IsZero() && !now.Before(f.AutoExitAt)
}
