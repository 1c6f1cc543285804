package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvalero/agenda-cli/internal/adapters/storage"
	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
)

func setupTestStorage(t *testing.T) ports.Storage {
	t.Helper()

	store, err := storage.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func strPtr(s string) *string { return &s }

func TestTaskService_AddTask(t *testing.T) {
	store := setupTestStorage(t)
	service := NewTaskService(store, nil)
	ctx := context.Background()

	t.Run("anytime task", func(t *testing.T) {
		task, err := service.AddTask(ctx, AddTaskRequest{
			Title:   "Buy groceries",
			DateKey: "2024-01-05",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-05", task.DateKey)
		assert.Nil(t, task.StartTime)
		assert.False(t, task.IsScheduled())
	})

	t.Run("timestamp normalized to day key", func(t *testing.T) {
		task, err := service.AddTask(ctx, AddTaskRequest{
			Title:   "Standup",
			DateKey: "2024-01-05T09:30:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-05", task.DateKey)
	})

	t.Run("scheduled with explicit times", func(t *testing.T) {
		task, err := service.AddTask(ctx, AddTaskRequest{
			Title:     "Meeting",
			DateKey:   "2024-01-05",
			StartTime: strPtr("10:00"),
			EndTime:   strPtr("11:00"),
		})
		require.NoError(t, err)
		require.NotNil(t, task.EndTime)
		assert.Equal(t, "11:00", *task.EndTime)
	})

	t.Run("end derived from duration", func(t *testing.T) {
		task, err := service.AddTask(ctx, AddTaskRequest{
			Title:           "Focus block",
			DateKey:         "2024-01-05",
			StartTime:       strPtr("14:00"),
			DurationMinutes: 90,
		})
		require.NoError(t, err)
		require.NotNil(t, task.EndTime)
		assert.Equal(t, "15:30", *task.EndTime)
	})

	t.Run("category created on first use", func(t *testing.T) {
		task, err := service.AddTask(ctx, AddTaskRequest{
			Title:         "Review budget",
			DateKey:       "2024-01-05",
			CategoryLabel: strPtr("finance"),
		})
		require.NoError(t, err)
		require.NotNil(t, task.CategoryID)

		category, err := store.Categories().FindByLabel(ctx, "finance")
		require.NoError(t, err)
		assert.Equal(t, category.ID, *task.CategoryID)
		assert.Equal(t, domain.DefaultCategoryColor, category.Color)

		// A second task with the same label reuses the category.
		again, err := service.AddTask(ctx, AddTaskRequest{
			Title:         "Pay invoices",
			DateKey:       "2024-01-06",
			CategoryLabel: strPtr("finance"),
		})
		require.NoError(t, err)
		assert.Equal(t, category.ID, *again.CategoryID)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		_, err := service.AddTask(ctx, AddTaskRequest{
			Title:   "Bad date",
			DateKey: "01/05/2024",
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("invalid time rejected", func(t *testing.T) {
		_, err := service.AddTask(ctx, AddTaskRequest{
			Title:     "Bad time",
			DateKey:   "2024-01-05",
			StartTime: strPtr("10:5"),
		})
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("end without start rejected", func(t *testing.T) {
		_, err := service.AddTask(ctx, AddTaskRequest{
			Title:   "Dangling end",
			DateKey: "2024-01-05",
			EndTime: strPtr("11:00"),
		})
		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})
}

func TestTaskService_EditTask(t *testing.T) {
	store := setupTestStorage(t)
	service := NewTaskService(store, nil)
	ctx := context.Background()

	task, err := service.AddTask(ctx, AddTaskRequest{
		Title:     "Original",
		DateKey:   "2024-01-05",
		StartTime: strPtr("10:00"),
		EndTime:   strPtr("11:00"),
	})
	require.NoError(t, err)

	t.Run("rename and reschedule", func(t *testing.T) {
		edited, err := service.EditTask(ctx, EditTaskRequest{
			Ref:     task.ID,
			Title:   strPtr("Renamed"),
			DateKey: strPtr("2024-01-08"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", edited.Title)
		assert.Equal(t, "2024-01-08", edited.DateKey)
	})

	t.Run("clear times makes task anytime", func(t *testing.T) {
		edited, err := service.EditTask(ctx, EditTaskRequest{
			Ref:        task.ID,
			ClearTimes: true,
		})
		require.NoError(t, err)
		assert.Nil(t, edited.StartTime)
		assert.False(t, edited.IsScheduled())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := service.EditTask(ctx, EditTaskRequest{
			Ref:   task.ID,
			Title: strPtr(""),
		})
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
	})

	t.Run("empty category label uncategorizes", func(t *testing.T) {
		_, err := service.EditTask(ctx, EditTaskRequest{
			Ref:           task.ID,
			CategoryLabel: strPtr("chores"),
		})
		require.NoError(t, err)

		edited, err := service.EditTask(ctx, EditTaskRequest{
			Ref:           task.ID,
			CategoryLabel: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, edited.CategoryID)
	})
}

func TestTaskService_CompleteAndToggle(t *testing.T) {
	store := setupTestStorage(t)
	service := NewTaskService(store, nil)
	ctx := context.Background()

	task, err := service.AddTask(ctx, AddTaskRequest{Title: "Finish report", DateKey: "2024-01-05"})
	require.NoError(t, err)

	completed, err := service.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	toggled, nowCompleted, err := service.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, nowCompleted)
	assert.False(t, toggled.Completed)
}

func TestTaskService_ResolveTask(t *testing.T) {
	store := setupTestStorage(t)
	service := NewTaskService(store, nil)
	ctx := context.Background()

	first, err := service.AddTask(ctx, AddTaskRequest{Title: "Water the plants", DateKey: "2024-01-05"})
	require.NoError(t, err)
	second, err := service.AddTask(ctx, AddTaskRequest{Title: "Write weekly report", DateKey: "2024-01-05"})
	require.NoError(t, err)

	t.Run("by full id", func(t *testing.T) {
		found, err := service.ResolveTask(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("by id prefix", func(t *testing.T) {
		found, err := service.ResolveTask(ctx, second.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, second.ID, found.ID)
	})

	t.Run("by fuzzy title", func(t *testing.T) {
		found, err := service.ResolveTask(ctx, "weekly")
		require.NoError(t, err)
		assert.Equal(t, second.ID, found.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.ResolveTask(ctx, "zzzzzz")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	store := setupTestStorage(t)
	service := NewTaskService(store, nil)
	ctx := context.Background()

	task, err := service.AddTask(ctx, AddTaskRequest{Title: "Temp", DateKey: "2024-01-05"})
	require.NoError(t, err)

	deleted, err := service.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	_, err = store.Tasks().FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCategoryService(t *testing.T) {
	store := setupTestStorage(t)
	service := NewCategoryService(store)
	ctx := context.Background()

	category, err := service.AddCategory(ctx, "work", "#FF6B6B")
	require.NoError(t, err)
	assert.Equal(t, "work", category.Label)

	_, err = service.AddCategory(ctx, "work", "")
	assert.ErrorIs(t, err, ErrCategoryExists)

	defaulted, err := service.AddCategory(ctx, "personal", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryColor, defaulted.Color)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	require.NoError(t, service.RemoveCategory(ctx, "work"))
	assert.ErrorIs(t, service.RemoveCategory(ctx, "work"), domain.ErrCategoryNotFound)
}
