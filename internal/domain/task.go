package domain

import (
	"strings"
	"time"
)

// Task is a single to-do entry with an optional deadline.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Deadline  *time.Time `json:"deadline"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewTask creates a task from user input.
func NewTask(text string, deadline *time.Time, now time.Time) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	return &Task{
		ID:        generateID(),
		Text:      text,
		Deadline:  deadline,
		CreatedAt: now,
	}, nil
}

// ToggleCompleted flips the completion state.
func (t *Task) ToggleCompleted() {
	t.Completed = !t.Completed
}

// Overdue reports whether the deadline has passed for an open task.
func (t *Task) Overdue(now time.Time) bool {
	return !t.Completed && t.Deadline != nil && now.After(*t.Deadline)
}

// ParseDeadline builds a deadline from separate date ("2006-01-02") and
// time ("15:04") parts. A time without a date means today. Both empty, or
// unparseable input, yields nil.
func ParseDeadline(dateStr, timeStr string, now time.Time) *time.Time {
	var deadline time.Time

	if dateStr != "" {
		d, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
		if err != nil {
			return nil
		}
		deadline = d
	}

	if timeStr != "" {
		clock, err := time.Parse("15:04", timeStr)
		if err != nil {
			if deadline.IsZero() {
				return nil
			}
			return &deadline
		}
		base := deadline
		if base.IsZero() {
			base = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		}
		deadline = time.Date(base.Year(), base.Month(), base.Day(),
			clock.Hour(), clock.Minute(), 0, 0, now.Location())
	}

	if deadline.IsZero() {
		return nil
	}
	return &deadline
}
