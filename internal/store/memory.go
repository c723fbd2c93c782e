package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/benvon/zenith-task/internal/models"
	"go.uber.org/zap"
)

// MemoryStore keeps tasks and categories for the lifetime of the process.
// All access goes through mu.
type MemoryStore struct {
	mu         sync.RWMutex
	tasks      []models.Task
	categories []string
	logger     *zap.Logger
}

// NewMemoryStore creates an empty store seeded with the default category
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: []string{models.DefaultCategory},
		logger:     zap.NewNop(),
	}
}

// SetLogger sets the logger used for store events
func (s *MemoryStore) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

// ListTasks returns a copy of all tasks in insertion order
func (s *MemoryStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks), nil
}

// AddTask appends an incomplete task. The category is not checked against
// the category set.
func (s *MemoryStore) AddTask(ctx context.Context, description, category string) (models.Task, error) {
	task := models.NewTask(description, category)

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	count := len(s.tasks)
	s.mu.Unlock()

	s.logger.Debug("task_added",
		zap.String("category", task.Category),
		zap.Int("task_count", count),
	)
	return task, nil
}

// DeleteTask removes and returns the task at index
func (s *MemoryStore) DeleteTask(ctx context.Context, index int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		return models.Task{}, fmt.Errorf("task %d: %w", index, ErrNotFound)
	}

	task := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)

	s.logger.Debug("task_deleted", zap.Int("index", index), zap.Int("task_count", len(s.tasks)))
	return task, nil
}

// CompleteTask marks the task at index as completed. Completing an already
// completed task leaves it unchanged.
func (s *MemoryStore) CompleteTask(ctx context.Context, index int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		return models.Task{}, fmt.Errorf("task %d: %w", index, ErrNotFound)
	}

	s.tasks[index].Completed = true
	return s.tasks[index], nil
}

// ListCategories returns a copy of the category names in creation order
func (s *MemoryStore) ListCategories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), nil
}

// CreateCategory trims name and appends it to the category set
func (s *MemoryStore) CreateCategory(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("category name is empty: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.categories, name) {
		return "", fmt.Errorf("category %q: %w", name, ErrConflict)
	}
	s.categories = append(s.categories, name)

	s.logger.Debug("category_created", zap.Int("category_count", len(s.categories)))
	return name, nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
