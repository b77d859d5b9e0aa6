package domain

import (
	"time"
)

// Remaining is the renderable breakdown of the time left until the
// countdown target. All fields are zero when the target has passed.
type Remaining struct {
	Total   time.Duration
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Done returns true once the target instant has been reached.
func (r Remaining) Done() bool {
	return r.Total <= 0
}

// ComputeRemaining breaks the duration from now until target into whole
// days, hours, minutes and seconds. Each call recomputes from the absolute
// target, so a once-per-second caller self-corrects any drift.
func ComputeRemaining(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{}
	}
	sec := int(diff / time.Second)
	return Remaining{
		Total:   diff,
		Days:    sec / 86400,
		Hours:   (sec % 86400) / 3600,
		Minutes: (sec % 3600) / 60,
		Seconds: sec % 60,
	}
}
