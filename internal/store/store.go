package store

import (
	"context"

	"github.com/benvon/zenith-task/internal/models"
)

// TaskStore defines the operations the API needs from task storage.
// Tasks are addressed by their position in insertion order; deleting a
// task shifts every later index down by one.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, description, category string) (models.Task, error)
	DeleteTask(ctx context.Context, index int) (models.Task, error)
	CompleteTask(ctx context.Context, index int) (models.Task, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, name string) (string, error)
	Ping(ctx context.Context) error
}

// Ensure concrete types implement the interface
var _ TaskStore = (*MemoryStore)(nil)
