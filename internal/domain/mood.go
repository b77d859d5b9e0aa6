package domain

import (
	"strings"
	"time"
)

// MoodIntensity grades how strongly a mood was felt.
type MoodIntensity string

const (
	IntensityLow    MoodIntensity = "low"
	IntensityMedium MoodIntensity = "medium"
	IntensityHigh   MoodIntensity = "high"
)

// DefaultMoodCategory is assigned to entries recorded before categories
// existed.
const DefaultMoodCategory = "Calm"

// Mood is a single journal entry.
type Mood struct {
	ID        string        `json:"id"`
	Mood      string        `json:"mood"`
	Category  string        `json:"category"`
	Intensity MoodIntensity `json:"intensity"`
	Note      string        `json:"note"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewMood creates a journal entry from user input.
func NewMood(text, category string, intensity MoodIntensity, now time.Time) (*Mood, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if category == "" {
		category = DefaultMoodCategory
	}
	if intensity == "" {
		intensity = IntensityMedium
	}
	return &Mood{
		ID:        generateID(),
		Mood:      text,
		Category:  category,
		Intensity: intensity,
		Timestamp: now,
	}, nil
}

// CycleIntensity steps low → medium → high → low.
func (m *Mood) CycleIntensity() {
	switch m.Intensity {
	case IntensityLow:
		m.Intensity = IntensityMedium
	case IntensityMedium:
		m.Intensity = IntensityHigh
	default:
		m.Intensity = IntensityLow
	}
}
