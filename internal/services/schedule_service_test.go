package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvalero/agenda-cli/internal/schedule"
)

func setupScheduleService(t *testing.T) (*ScheduleService, *TaskService) {
	t.Helper()

	store := setupTestStorage(t)
	tasks := NewTaskService(store, nil)
	return NewScheduleService(store, tasks, schedule.DefaultLayout()), tasks
}

func TestScheduleService_Day(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{
		Title:     "Morning meeting",
		DateKey:   "2024-01-05",
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
	})
	require.NoError(t, err)

	_, err = tasks.AddTask(ctx, AddTaskRequest{
		Title:   "Buy groceries",
		DateKey: "2024-01-05",
	})
	require.NoError(t, err)

	_, err = tasks.AddTask(ctx, AddTaskRequest{
		Title:   "Other day",
		DateKey: "2024-01-06",
	})
	require.NoError(t, err)

	day, skipped, err := service.Day(ctx, "2024-01-05", nil)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, "2024-01-05", day.DayKey)
	require.Len(t, day.Scheduled, 1)
	require.Len(t, day.Anytime, 1)

	// 09:00 on the 06:00 axis.
	assert.Equal(t, 180, day.Scheduled[0].StartMinutes)
	assert.True(t, day.Anytime[0].IsAnytime)

	// The anytime task lands in the first gap, which opens when the
	// meeting ends at 10:00.
	assert.Equal(t, 240, day.Anytime[0].StartMinutes)
}

func TestScheduleService_Day_TimestampKey(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{Title: "Stamped", DateKey: "2024-01-05T12:00:00Z"})
	require.NoError(t, err)

	day, _, err := service.Day(ctx, "2024-01-05 00:00:00", nil)
	require.NoError(t, err)
	assert.Len(t, day.Anytime, 1)
}

func TestScheduleService_Day_InvalidKey(t *testing.T) {
	service, _ := setupScheduleService(t)

	_, _, err := service.Day(context.Background(), "not-a-date", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestScheduleService_Day_CategoryFilter(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{
		Title:         "Work item",
		DateKey:       "2024-01-05",
		CategoryLabel: strPtr("work"),
	})
	require.NoError(t, err)

	_, err = tasks.AddTask(ctx, AddTaskRequest{
		Title:         "Errand",
		DateKey:       "2024-01-05",
		CategoryLabel: strPtr("errands"),
	})
	require.NoError(t, err)

	_, err = tasks.AddTask(ctx, AddTaskRequest{Title: "Unlabeled", DateKey: "2024-01-05"})
	require.NoError(t, err)

	day, _, err := service.Day(ctx, "2024-01-05", []string{"work"})
	require.NoError(t, err)

	// The work task plus the uncategorized one, which always passes.
	require.Len(t, day.Anytime, 2)

	titles := []string{day.Anytime[0].Task.Title, day.Anytime[1].Task.Title}
	assert.ElementsMatch(t, []string{"Work item", "Unlabeled"}, titles)

	// Selecting every category behaves like no filter at all.
	all, _, err := service.Day(ctx, "2024-01-05", []string{"errands", "work"})
	require.NoError(t, err)
	assert.Len(t, all.Anytime, 3)
}

func TestScheduleService_Week(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{Title: "Monday", DateKey: "2024-01-01"})
	require.NoError(t, err)
	_, err = tasks.AddTask(ctx, AddTaskRequest{Title: "Sunday", DateKey: "2024-01-07"})
	require.NoError(t, err)
	_, err = tasks.AddTask(ctx, AddTaskRequest{Title: "Next week", DateKey: "2024-01-08"})
	require.NoError(t, err)

	grid, skipped, err := service.Week(ctx, "2024-01-01", nil)
	require.NoError(t, err)
	assert.Zero(t, skipped)

	assert.Len(t, grid.Days[0].Anytime, 1)
	assert.Len(t, grid.Days[6].Anytime, 1)
	for i := 1; i < 6; i++ {
		assert.Empty(t, grid.Days[i].Anytime, "day %d should be empty", i)
	}
}

func TestScheduleService_Month(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d"} {
		_, err := tasks.AddTask(ctx, AddTaskRequest{Title: title, DateKey: "2024-02-10"})
		require.NoError(t, err)
	}

	cells, skipped, err := service.Month(ctx, "2024-02-01", nil)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, cells, 29)

	idx := -1
	for i := range cells {
		if cells[i].DayKey == "2024-02-10" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Len(t, cells[idx].Visible, 3)
	assert.Equal(t, 1, cells[idx].RemainingCount)
}

func TestScheduleService_Gaps(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{
		Title:     "Meeting",
		DateKey:   "2024-01-05",
		StartTime: strPtr("10:00"),
		EndTime:   strPtr("15:00"),
	})
	require.NoError(t, err)

	gaps, err := service.Gaps(ctx, "2024-01-05")
	require.NoError(t, err)
	require.Len(t, gaps, 2)
	assert.Equal(t, 540, gaps[0].StartMinutes)
	assert.Equal(t, 600, gaps[0].EndMinutes)
	assert.Equal(t, 900, gaps[1].StartMinutes)
	assert.Equal(t, 1200, gaps[1].EndMinutes)
}

func TestScheduleService_Next(t *testing.T) {
	service, tasks := setupScheduleService(t)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, AddTaskRequest{
		Title:     "Early",
		DateKey:   "2024-01-05",
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("09:30"),
	})
	require.NoError(t, err)

	late, err := tasks.AddTask(ctx, AddTaskRequest{
		Title:     "Late",
		DateKey:   "2024-01-05",
		StartTime: strPtr("16:00"),
		EndTime:   strPtr("17:00"),
	})
	require.NoError(t, err)

	next, err := service.Next(ctx, "2024-01-05", "12:00")
	require.NoError(t, err)
	assert.Equal(t, late.ID, next.ID)

	_, err = service.Next(ctx, "2024-01-05", "18:00")
	assert.ErrorIs(t, err, ErrNoUpcomingTask)
}

func TestScheduleService_MCPProvider(t *testing.T) {
	service, _ := setupScheduleService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Via MCP", "2024-01-05", strPtr("10:00"), strPtr("11:00"), strPtr("work"))
	require.NoError(t, err)
	require.NotNil(t, task.CategoryID)

	done, err := service.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
}
