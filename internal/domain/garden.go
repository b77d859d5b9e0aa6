package domain

import (
	"strings"
	"time"
)

// FlowerType is the decorative species assigned to a garden note.
type FlowerType string

const (
	FlowerRose       FlowerType = "rose"
	FlowerTulip      FlowerType = "tulip"
	FlowerDaisy      FlowerType = "daisy"
	FlowerPeony      FlowerType = "peony"
	FlowerRanunculus FlowerType = "ranunculus"
)

// FlowerTypes lists every species a new note may be assigned.
var FlowerTypes = []FlowerType{
	FlowerRose, FlowerTulip, FlowerDaisy, FlowerPeony, FlowerRanunculus,
}

// FlowerLabel returns the botanical label shown in the pressed album.
func FlowerLabel(t FlowerType) string {
	switch t {
	case FlowerRose:
		return "Rosa"
	case FlowerTulip:
		return "Tulipa"
	case FlowerDaisy:
		return "Bellis perennis"
	case FlowerPeony:
		return "Paeonia"
	case FlowerRanunculus:
		return "Ranunculus"
	default:
		return string(t)
	}
}

// GardenNote is a note planted in the garden. It starts as a bud and
// blooms open to show its text.
type GardenNote struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"createdAt"`
	FlowerType FlowerType `json:"flowerType"`
	Bloomed    bool       `json:"bloomed"`
}

// NewGardenNote plants a note with the given species.
func NewGardenNote(text string, flower FlowerType, now time.Time) (*GardenNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	return &GardenNote{
		ID:         generateID(),
		Text:       text,
		CreatedAt:  now,
		FlowerType: flower,
	}, nil
}

// ToggleBloom opens a bud or closes a bloomed flower.
func (n *GardenNote) ToggleBloom() {
	n.Bloomed = !n.Bloomed
}
