package ports

import "haven/internal/domain"

// Presenter is the rendering side of a view transition. The coordinator
// asks it to show a view before committing the switch; an error aborts
// the transition and leaves the current view active.
type Presenter interface {
	ShowView(v domain.View) error

	// RevealSection marks dashboard section idx as visible. Sections are
	// revealed once, in order, on a stagger after entering the home view.
	RevealSection(idx int)

	// SetBookOpen animates the book widget open or closed.
	SetBookOpen(open bool)
}

// AmbientAudio starts and stops the looping background track. At most one
// view plays audio at a time; the coordinator owns that arbitration.
type AmbientAudio interface {
	SetPlaying(playing bool)
}

// Chime emits one-shot notifications for mode boundaries.
type Chime interface {
	CountdownComplete()
	ZenStart()
	ZenEnd()
}
