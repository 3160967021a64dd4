package engine

import (
	"context"
	"strings"
	"time"

	"forgeyourday/internal/storage"
)

// TaskView is what the task screen renders: either today's list, or a
// signal that the user needs to set tasks again.
type TaskView struct {
	NeedsSetup bool
	Tasks      []string
}

// CheckStatus reports the state of the user's daily list. A list saved on a
// different calendar day than now is expired: both backing records are
// removed and the caller is asked to re-collect tasks.
func (s *Service) CheckStatus(ctx context.Context, username string, now time.Time) (*TaskView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.tasks.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	if list == nil || !sameDay(list.SavedAt, now) {
		if err := s.tasks.Delete(ctx, username); err != nil {
			return nil, err
		}
		return &TaskView{NeedsSetup: true, Tasks: []string{}}, nil
	}
	return &TaskView{Tasks: list.Tasks}, nil
}

// SaveTasks stores the day's tasks, replacing any prior list. Entries are
// trimmed and blanks dropped; the filtered list is returned.
func (s *Service) SaveTasks(ctx context.Context, username string, tasks []string, now time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t = strings.TrimSpace(t); t != "" {
			filtered = append(filtered, t)
		}
	}
	if err := s.tasks.Save(ctx, username, storage.TaskList{Tasks: filtered, SavedAt: now}); err != nil {
		return nil, err
	}
	return filtered, nil
}

// AppendTask adds one task to today's list. Blank input is a no-op. The
// save timestamp is refreshed, which also pushes out the expiry window.
func (s *Service) AppendTask(ctx context.Context, username, text string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	list, err := s.tasks.Load(ctx, username)
	if err != nil {
		return err
	}
	if list == nil {
		list = &storage.TaskList{}
	}
	list.Tasks = append(list.Tasks, t)
	list.SavedAt = now
	return s.tasks.Save(ctx, username, *list)
}

// MarkTaskDone removes the first exact match of text from the stored list.
// Absent text is not an error. The save timestamp is left alone.
func (s *Service) MarkTaskDone(ctx context.Context, username, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markTaskDone(ctx, username, text)
}

func (s *Service) markTaskDone(ctx context.Context, username, text string) error {
	list, err := s.tasks.Load(ctx, username)
	if err != nil || list == nil {
		return err
	}
	for i, t := range list.Tasks {
		if t == text {
			list.Tasks = append(list.Tasks[:i], list.Tasks[i+1:]...)
			return s.tasks.Save(ctx, username, *list)
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
