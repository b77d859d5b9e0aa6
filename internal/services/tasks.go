package services

import (
	"log"
	"time"

	"github.com/sahilm/fuzzy"

	"haven/internal/adapters/storage"
	"haven/internal/domain"
	"haven/internal/ports"
)

// TaskService manages the to-do list.
type TaskService struct {
	store  ports.FlagStore
	logger *log.Logger
	now    func() time.Time
	tasks  []domain.Task
}

// NewTaskService creates the service. Call Load before use.
func NewTaskService(store ports.FlagStore, logger *log.Logger, now func() time.Time) *TaskService {
	return &TaskService{store: store, logger: logger, now: now}
}

// Load restores persisted tasks.
func (s *TaskService) Load() {
	s.tasks = nil
	s.store.Get(storage.KeyTasks, &s.tasks)
}

// All returns every task, newest first.
func (s *TaskService) All() []domain.Task {
	return s.tasks
}

// Add creates a task. The deadline parts are optional; unparseable parts
// fall back to no deadline rather than rejecting the task.
func (s *TaskService) Add(text, dateStr, timeStr string) (*domain.Task, error) {
	now := s.now()
	task, err := domain.NewTask(text, domain.ParseDeadline(dateStr, timeStr, now), now)
	if err != nil {
		return nil, err
	}
	s.tasks = append([]domain.Task{*task}, s.tasks...)
	s.save()
	return task, nil
}

// Toggle flips a task's completion state.
func (s *TaskService) Toggle(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].ToggleCompleted()
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes a task.
func (s *TaskService) Delete(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Search fuzzy-matches tasks by text. An empty query returns everything.
func (s *TaskService) Search(query string) []domain.Task {
	if query == "" {
		return s.tasks
	}

	texts := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		texts[i] = t.Text
	}

	matches := fuzzy.Find(query, texts)
	results := make([]domain.Task, 0, len(matches))
	for _, m := range matches {
		results = append(results, s.tasks[m.Index])
	}
	return results
}

func (s *TaskService) save() {
	if err := s.store.Set(storage.KeyTasks, s.tasks); err != nil {
		s.logger.Printf("failed to persist tasks: %v", err)
	}
}
