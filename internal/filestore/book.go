package filestore

import (
	"fmt"
	"slices"

	"github.com/benvon/zenith-task/internal/models"
	"github.com/benvon/zenith-task/internal/store"
)

// Book maps categories to their tasks, keeping categories in the order
// they were first seen.
type Book struct {
	order []string
	tasks map[string][]models.Task
}

// NewBook creates an empty book
func NewBook() *Book {
	return &Book{tasks: make(map[string][]models.Task)}
}

// Categories returns category names in insertion order
func (b *Book) Categories() []string {
	return slices.Clone(b.order)
}

// Has reports whether the category has at least one task
func (b *Book) Has(category string) bool {
	_, ok := b.tasks[category]
	return ok
}

// Tasks returns a copy of the tasks filed under category
func (b *Book) Tasks(category string) []models.Task {
	return slices.Clone(b.tasks[category])
}

// Len returns the total number of tasks
func (b *Book) Len() int {
	n := 0
	for _, tasks := range b.tasks {
		n += len(tasks)
	}
	return n
}

// Append files task under its category
func (b *Book) Append(task models.Task) {
	if _, ok := b.tasks[task.Category]; !ok {
		b.order = append(b.order, task.Category)
	}
	b.tasks[task.Category] = append(b.tasks[task.Category], task)
}

// Complete marks the task with the given 1-based number as completed
func (b *Book) Complete(category string, number int) (models.Task, error) {
	i, err := b.position(category, number)
	if err != nil {
		return models.Task{}, err
	}
	b.tasks[category][i].Completed = true
	return b.tasks[category][i], nil
}

// Remove deletes the task with the given 1-based number. A category left
// without tasks is dropped from the book.
func (b *Book) Remove(category string, number int) (models.Task, error) {
	i, err := b.position(category, number)
	if err != nil {
		return models.Task{}, err
	}

	task := b.tasks[category][i]
	b.tasks[category] = slices.Delete(b.tasks[category], i, i+1)
	if len(b.tasks[category]) == 0 {
		delete(b.tasks, category)
		b.order = slices.DeleteFunc(b.order, func(c string) bool { return c == category })
	}
	return task, nil
}

func (b *Book) position(category string, number int) (int, error) {
	tasks, ok := b.tasks[category]
	if !ok {
		return 0, fmt.Errorf("category %q: %w", category, store.ErrNotFound)
	}
	if number < 1 || number > len(tasks) {
		return 0, fmt.Errorf("task %d in %q: %w", number, category, store.ErrNotFound)
	}
	return number - 1, nil
}
