package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/benvon/zenith-task/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, descriptions ...string) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	for _, d := range descriptions {
		_, err := s.AddTask(context.Background(), d, "")
		require.NoError(t, err)
	}
	return s
}

func TestMemoryStore_AddTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	task, err := s.AddTask(ctx, "Write report", "Work")
	require.NoError(t, err)
	assert.Equal(t, models.Task{Description: "Write report", Category: "Work"}, task)

	task, err = s.AddTask(ctx, "Read", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, task.Category)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Write report", tasks[0].Description)
	assert.Equal(t, "Read", tasks[1].Description)

	// unknown categories are accepted without being registered
	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.DefaultCategory}, categories)
}

func TestMemoryStore_DeleteTask_PreservesOrder(t *testing.T) {
	t.Parallel()

	for index := 0; index < 4; index++ {
		index := index
		t.Run(fmt.Sprintf("index %d", index), func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s := seededStore(t, "a", "b", "c", "d")
			before, err := s.ListTasks(ctx)
			require.NoError(t, err)

			deleted, err := s.DeleteTask(ctx, index)
			require.NoError(t, err)
			assert.Equal(t, before[index], deleted)

			after, err := s.ListTasks(ctx)
			require.NoError(t, err)
			require.Len(t, after, len(before)-1)

			want := append(append([]models.Task{}, before[:index]...), before[index+1:]...)
			assert.Equal(t, want, after)
		})
	}
}

func TestMemoryStore_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to length", 2},
		{"far past end", 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s := seededStore(t, "a", "b")

			_, err := s.DeleteTask(ctx, tt.index)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = s.CompleteTask(ctx, tt.index)
			assert.ErrorIs(t, err, ErrNotFound)

			tasks, err := s.ListTasks(ctx)
			require.NoError(t, err)
			assert.Len(t, tasks, 2)
		})
	}
}

func TestMemoryStore_CompleteTask_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := seededStore(t, "a", "b")

	first, err := s.CompleteTask(ctx, 1)
	require.NoError(t, err)
	assert.True(t, first.Completed)
	afterOnce, err := s.ListTasks(ctx)
	require.NoError(t, err)

	second, err := s.CompleteTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	afterTwice, err := s.ListTasks(ctx)
	require.NoError(t, err)

	assert.Equal(t, afterOnce, afterTwice)
	assert.False(t, afterTwice[0].Completed)
}

func TestMemoryStore_ListTasks_ReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := seededStore(t, "a")

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	tasks[0].Description = "mutated"

	fresh, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", fresh[0].Description)
}

func TestMemoryStore_CreateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"new category", "Work", "Work", nil},
		{"trimmed", "  Home  ", "Home", nil},
		{"empty", "", "", ErrInvalidInput},
		{"whitespace only", "   ", "", ErrInvalidInput},
		{"default exists", "General", "", ErrConflict},
		{"case sensitive", "general", "general", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewMemoryStore().CreateCategory(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryStore_CreateCategory_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.CreateCategory(ctx, "Work")
	require.NoError(t, err)
	before, err := s.ListCategories(ctx)
	require.NoError(t, err)

	_, err = s.CreateCategory(ctx, " Work ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	after, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryStore_ConcurrentDeletes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := seededStore(t, "a", "b", "c", "d", "e", "f", "g", "h")

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.DeleteTask(ctx, 0); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 8, succeeded)
}
