// Package services contains the application logic behind the dashboard.
package services

import (
	"time"

	"haven/internal/domain"
)

// CountdownEngine tracks the gate target. Completion fires exactly once,
// even when the process starts with the target already in the past.
type CountdownEngine struct {
	target time.Time
	began  time.Time
	now    func() time.Time
	done   bool
	onDone func()
}

// NewCountdownEngine creates an engine for the given target. began is the
// instant the wait started (first launch); onDone may be nil. A target
// already in the past marks the engine done immediately without firing
// onDone, so a restart after the date never replays the completion chime.
func NewCountdownEngine(target, began time.Time, now func() time.Time, onDone func()) *CountdownEngine {
	e := &CountdownEngine{target: target, began: began, now: now, onDone: onDone}
	if !e.now().Before(target) {
		e.done = true
	}
	return e
}

// Target returns the instant the countdown runs to.
func (e *CountdownEngine) Target() time.Time {
	return e.target
}

// Done reports whether the target has been reached.
func (e *CountdownEngine) Done() bool {
	return e.done
}

// Remaining returns the current renderable breakdown.
func (e *CountdownEngine) Remaining() domain.Remaining {
	return domain.ComputeRemaining(e.target, e.now())
}

// Progress reports how much of the wait has elapsed, from 0 to 1.
func (e *CountdownEngine) Progress() float64 {
	if e.done {
		return 1
	}
	total := e.target.Sub(e.began)
	if total <= 0 {
		return 1
	}
	elapsed := e.now().Sub(e.began)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

// Tick checks the clock against the target. It returns true only on the
// single tick where the countdown crosses zero.
func (e *CountdownEngine) Tick() bool {
	if e.done {
		return false
	}
	if e.now().Before(e.target) {
		return false
	}
	e.done = true
	if e.onDone != nil {
		e.onDone()
	}
	return true
}
