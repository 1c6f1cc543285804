package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// ErrNoUpcomingTask is returned when no scheduled task remains today.
var ErrNoUpcomingTask = errors.New("no upcoming scheduled task")

// ScheduleService runs the placement engine over stored tasks and exposes
// laid-out calendar views. It also implements ports.MCPScheduleProvider so
// the MCP server can serve the same views.
type ScheduleService struct {
	storage ports.Storage
	tasks   *TaskService
	layout  schedule.Layout
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(storage ports.Storage, tasks *TaskService, layout schedule.Layout) *ScheduleService {
	return &ScheduleService{storage: storage, tasks: tasks, layout: layout}
}

// Ensure ScheduleService implements ports.MCPScheduleProvider.
var _ ports.MCPScheduleProvider = (*ScheduleService)(nil)

// Layout returns the layout the service lays days out with.
func (s *ScheduleService) Layout() schedule.Layout {
	return s.layout
}

// Day returns the placed schedule for one day plus the number of stored
// records skipped because their date key could not be normalized.
func (s *ScheduleService) Day(ctx context.Context, dayKey string, selected []string) (domain.DaySchedule, int, error) {
	key, ok := schedule.NormalizeDateKey(dayKey)
	if !ok {
		return domain.DaySchedule{}, 0, fmt.Errorf("%w: %q", ErrInvalidDate, dayKey)
	}

	tasks, skipped, err := s.loadTasks(ctx)
	if err != nil {
		return domain.DaySchedule{}, 0, err
	}

	filter, err := s.buildFilter(ctx, selected)
	if err != nil {
		return domain.DaySchedule{}, 0, err
	}

	return schedule.BuildDay(tasks, key, filter, s.layout), skipped, nil
}

// Week returns seven consecutive day schedules starting at startKey.
func (s *ScheduleService) Week(ctx context.Context, startKey string, selected []string) (domain.WeekGrid, int, error) {
	key, ok := schedule.NormalizeDateKey(startKey)
	if !ok {
		return domain.WeekGrid{}, 0, fmt.Errorf("%w: %q", ErrInvalidDate, startKey)
	}

	tasks, skipped, err := s.loadTasks(ctx)
	if err != nil {
		return domain.WeekGrid{}, 0, err
	}

	filter, err := s.buildFilter(ctx, selected)
	if err != nil {
		return domain.WeekGrid{}, 0, err
	}

	grid, err := schedule.BuildWeek(tasks, key, filter, s.layout)
	if err != nil {
		return domain.WeekGrid{}, 0, err
	}
	return grid, skipped, nil
}

// Month returns one compact cell per day of the month containing dayKey.
func (s *ScheduleService) Month(ctx context.Context, dayKey string, selected []string) ([]domain.MonthCell, int, error) {
	key, ok := schedule.NormalizeDateKey(dayKey)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidDate, dayKey)
	}
	day, err := schedule.ParseDayKey(key)
	if err != nil {
		return nil, 0, err
	}

	tasks, skipped, err := s.loadTasks(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter, err := s.buildFilter(ctx, selected)
	if err != nil {
		return nil, 0, err
	}

	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	cells := make([]domain.MonthCell, 0, 31)
	for d := first; d.Month() == day.Month(); d = d.AddDate(0, 0, 1) {
		cells = append(cells, schedule.BuildMonthCell(tasks, schedule.DayKeyOf(d), filter, s.layout.MonthCellLimit))
	}
	return cells, skipped, nil
}

// Gaps returns the free intervals of the work window for one day. Only
// tasks with a canonical date key can land on a specific day, so the date
// range query is enough here.
func (s *ScheduleService) Gaps(ctx context.Context, dayKey string) ([]domain.Gap, error) {
	key, ok := schedule.NormalizeDateKey(dayKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dayKey)
	}

	tasks, err := s.storage.Tasks().FindByDateRange(ctx, key, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	sel := schedule.SelectDay(tasks, key, schedule.CategoryFilter{})
	return schedule.FindGaps(sel.Scheduled, s.layout), nil
}

// Next returns the first task scheduled at or after the given clock on the
// given day.
func (s *ScheduleService) Next(ctx context.Context, dayKey, afterClock string) (*domain.Task, error) {
	key, ok := schedule.NormalizeDateKey(dayKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dayKey)
	}
	after, ok := schedule.ParseClock(afterClock)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, afterClock)
	}

	tasks, err := s.storage.Tasks().FindByDateRange(ctx, key, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	sel := schedule.SelectDay(tasks, key, schedule.CategoryFilter{})
	for _, task := range sel.Scheduled {
		if task.Completed {
			continue
		}
		start, ok := schedule.ParseClock(*task.StartTime)
		if ok && start >= after {
			return task, nil
		}
	}
	return nil, ErrNoUpcomingTask
}

// CreateTask adds a task through the normal validated write path.
func (s *ScheduleService) CreateTask(ctx context.Context, title, dateKey string, startTime, endTime, categoryLabel *string) (*domain.Task, error) {
	return s.tasks.AddTask(ctx, AddTaskRequest{
		Title:         title,
		DateKey:       dateKey,
		StartTime:     startTime,
		EndTime:       endTime,
		CategoryLabel: categoryLabel,
	})
}

// CompleteTask marks a task as done.
func (s *ScheduleService) CompleteTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.tasks.CompleteTask(ctx, taskID)
}

// loadTasks fetches every task and counts the ones whose date key cannot
// be normalized. Those records never appear in any view; the count keeps
// the data-quality signal visible to callers.
func (s *ScheduleService) loadTasks(ctx context.Context) ([]*domain.Task, int, error) {
	tasks, err := s.storage.Tasks().FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load tasks: %w", err)
	}

	skipped := 0
	for _, task := range tasks {
		if _, ok := schedule.NormalizeDateKey(task.DateKey); !ok {
			skipped++
		}
	}
	return tasks, skipped, nil
}

// buildFilter resolves selected category labels to IDs and pairs them
// with the current category universe. Labels that do not resolve are kept
// verbatim so passing raw IDs also works.
func (s *ScheduleService) buildFilter(ctx context.Context, selected []string) (schedule.CategoryFilter, error) {
	categories, err := s.storage.Categories().FindAll(ctx)
	if err != nil {
		return schedule.CategoryFilter{}, fmt.Errorf("failed to load categories: %w", err)
	}

	byLabel := make(map[string]string, len(categories))
	universe := make([]string, 0, len(categories))
	for _, category := range categories {
		byLabel[category.Label] = category.ID
		universe = append(universe, category.ID)
	}

	ids := make([]string, 0, len(selected))
	for _, sel := range selected {
		if id, ok := byLabel[sel]; ok {
			ids = append(ids, id)
		} else {
			ids = append(ids, sel)
		}
	}

	return schedule.CategoryFilter{Selected: ids, Universe: universe}, nil
}
