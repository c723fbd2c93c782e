// Package filestore implements the console's task and category storage on
// top of a Persister. Each operation loads the full state, changes it and
// saves it back.
package filestore

import (
	"fmt"
	"slices"
	"strings"

	"github.com/benvon/zenith-task/internal/models"
	"github.com/benvon/zenith-task/internal/store"
	"go.uber.org/zap"
)

// AddResult describes the outcome of AddTask
type AddResult struct {
	Task            models.Task
	CategoryCreated bool
}

// Store runs task and category operations against a Persister
type Store struct {
	p      Persister
	logger *zap.Logger
}

// New creates a store over p
func New(p Persister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{p: p, logger: logger}
}

// LoadTasks returns the current task book
func (s *Store) LoadTasks() (*Book, error) {
	return s.p.LoadTasks()
}

// LoadCategories returns the current category list
func (s *Store) LoadCategories() ([]string, error) {
	return s.p.LoadCategories()
}

// AddTask files a new incomplete task under category, creating the
// category first when it is not known yet. Text that would not survive
// the line format is rejected with store.ErrInvalidInput.
func (s *Store) AddTask(description, category string) (AddResult, error) {
	if strings.TrimSpace(description) == "" {
		return AddResult{}, fmt.Errorf("task description is empty: %w", store.ErrInvalidInput)
	}
	task := models.NewTask(description, category)
	if parsed, ok := ParseLine(FormatLine(task)); !ok || parsed != task {
		return AddResult{}, fmt.Errorf("task %q = %q cannot be stored as a line: %w", description, category, store.ErrInvalidInput)
	}

	book, err := s.p.LoadTasks()
	if err != nil {
		return AddResult{}, err
	}
	categories, err := s.p.LoadCategories()
	if err != nil {
		return AddResult{}, err
	}

	result := AddResult{Task: task}
	if !slices.Contains(categories, task.Category) {
		if err := s.p.SaveCategories(append(categories, task.Category)); err != nil {
			return AddResult{}, err
		}
		result.CategoryCreated = true
		s.logger.Debug("category_auto_created", zap.String("category", task.Category))
	}

	book.Append(task)
	if err := s.p.SaveTasks(book); err != nil {
		return AddResult{}, err
	}

	s.logger.Debug("task_added", zap.String("category", task.Category), zap.Int("task_count", book.Len()))
	return result, nil
}

// CompleteTask marks the task with the 1-based number in category as done
func (s *Store) CompleteTask(number int, category string) (models.Task, error) {
	book, err := s.p.LoadTasks()
	if err != nil {
		return models.Task{}, err
	}

	task, err := book.Complete(category, number)
	if err != nil {
		return models.Task{}, err
	}
	if err := s.p.SaveTasks(book); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes the task with the 1-based number in category. The
// category stays in the category list even when its last task is removed.
func (s *Store) DeleteTask(number int, category string) (models.Task, error) {
	book, err := s.p.LoadTasks()
	if err != nil {
		return models.Task{}, err
	}

	task, err := book.Remove(category, number)
	if err != nil {
		return models.Task{}, err
	}
	if err := s.p.SaveTasks(book); err != nil {
		return models.Task{}, err
	}

	s.logger.Debug("task_deleted",
		zap.String("category", category),
		zap.Int("number", number),
		zap.Bool("category_emptied", !book.Has(category)),
	)
	return task, nil
}

// CreateCategory appends name to the category list. The name is stored
// as given; a name that reads back as an existing one is reported as
// store.ErrConflict.
func (s *Store) CreateCategory(name string) error {
	categories, err := s.p.LoadCategories()
	if err != nil {
		return err
	}
	if slices.Contains(categories, strings.TrimSpace(name)) {
		return fmt.Errorf("category %q: %w", name, store.ErrConflict)
	}
	return s.p.SaveCategories(append(categories, name))
}
