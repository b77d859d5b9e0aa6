package domain

import "errors"

var (
	// ErrViewUnavailable is returned when a transition targets a view that
	// does not exist in this configuration.
	ErrViewUnavailable = errors.New("view unavailable")

	// ErrTransitionInProgress is returned when a switch is requested while
	// a previous transition is still settling.
	ErrTransitionInProgress = errors.New("transition in progress")

	// ErrEmptyText is returned when a record is created from blank input.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidImport is returned when imported data has the wrong shape.
	ErrInvalidImport = errors.New("invalid import format")
)
