package domain

import (
	"time"
)

// View identifies one of the mutually exclusive top-level screens.
type View string

const (
	// ViewCountdown is the gate shown until the target instant passes.
	ViewCountdown View = "countdown"

	// ViewHome is the main dashboard of widget cards.
	ViewHome View = "home"

	// ViewGarden is the secondary board of plantable notes.
	ViewGarden View = "garden"
)

// ViewState tracks which top-level view is active. Exactly one view is
// active at any time; LastSwitchTime throttles rapid re-entrant switches.
type ViewState struct {
	ActiveView     View
	LastSwitchTime time.Time
}

// GetViewLabel returns a human-readable label for the view.
func GetViewLabel(v View) string {
	switch v {
	case ViewCountdown:
		return "Countdown"
	case ViewHome:
		return "Home"
	case ViewGarden:
		return "Garden"
	default:
		return "Unknown"
	}
}
