// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// Application-level validation errors. The write path is strict about
// dates and clock strings so that malformed values never enter storage
// through this program; tolerance for dirty data lives in the read path.
var (
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD or an ISO timestamp")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrEndBeforeStart   = errors.New("end time requires a start time")
	ErrAmbiguousTaskRef = errors.New("reference matches more than one task")
)

// TaskService handles task-related use cases.
type TaskService struct {
	storage     ports.Storage
	gitDetector ports.GitDetector
}

// NewTaskService creates a new task service. The git detector is optional
// and only consulted when a request asks for repository context.
func NewTaskService(storage ports.Storage, gitDetector ports.GitDetector) *TaskService {
	return &TaskService{storage: storage, gitDetector: gitDetector}
}

// AddTaskRequest contains the data needed to create a new task.
type AddTaskRequest struct {
	Title           string
	Notes           string
	DateKey         string
	StartTime       *string
	EndTime         *string
	DurationMinutes int
	CategoryLabel   *string
	UseGitContext   bool
	WorkingDir      string
}

// AddTask creates a new task. The date is normalized to its canonical day
// key and times are validated before anything is persisted. When no end
// time is given but a duration is, the end is derived from the start.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (*domain.Task, error) {
	dayKey, ok := schedule.NormalizeDateKey(req.DateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.DateKey)
	}

	start, end, err := validateTimes(req.StartTime, req.EndTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(req.Title, dayKey)
	if err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	task.Notes = req.Notes
	task.SetTimes(start, end)

	label := req.CategoryLabel
	if label == nil && req.UseGitContext && s.gitDetector != nil {
		if info, err := s.gitDetector.Detect(ctx, req.WorkingDir); err == nil && info.RepoName != "" {
			label = &info.RepoName
		}
	}
	if label != nil && *label != "" {
		category, err := s.resolveOrCreateCategory(ctx, *label)
		if err != nil {
			return nil, err
		}
		task.CategoryID = &category.ID
	}

	if err := s.storage.Tasks().Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return task, nil
}

// EditTaskRequest carries optional field updates; nil means keep the
// current value.
type EditTaskRequest struct {
	Ref           string
	Title         *string
	Notes         *string
	DateKey       *string
	StartTime     *string
	EndTime       *string
	ClearTimes    bool
	CategoryLabel *string
}

// EditTask updates an existing task resolved from a reference.
func (s *TaskService) EditTask(ctx context.Context, req EditTaskRequest) (*domain.Task, error) {
	task, err := s.ResolveTask(ctx, req.Ref)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, domain.ErrEmptyTaskTitle
		}
		task.Title = *req.Title
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.DateKey != nil {
		dayKey, ok := schedule.NormalizeDateKey(*req.DateKey)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *req.DateKey)
		}
		if err := task.Reschedule(dayKey); err != nil {
			return nil, err
		}
	}

	switch {
	case req.ClearTimes:
		task.SetTimes(nil, nil)
	case req.StartTime != nil || req.EndTime != nil:
		start := task.StartTime
		end := task.EndTime
		if req.StartTime != nil {
			start = req.StartTime
		}
		if req.EndTime != nil {
			end = req.EndTime
		}
		start, end, err = validateTimes(start, end, 0)
		if err != nil {
			return nil, err
		}
		task.SetTimes(start, end)
	}

	if req.CategoryLabel != nil {
		if *req.CategoryLabel == "" {
			task.CategoryID = nil
		} else {
			category, err := s.resolveOrCreateCategory(ctx, *req.CategoryLabel)
			if err != nil {
				return nil, err
			}
			task.CategoryID = &category.ID
		}
	}

	if err := s.storage.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// CompleteTask marks a task as done.
func (s *TaskService) CompleteTask(ctx context.Context, ref string) (*domain.Task, error) {
	task, err := s.ResolveTask(ctx, ref)
	if err != nil {
		return nil, err
	}

	task.Complete()
	if err := s.storage.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// ToggleTask flips the completed flag and returns the task with its new
// state. Used by the interactive view's toggle intent.
func (s *TaskService) ToggleTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	task, err := s.storage.Tasks().FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	completed := task.ToggleCompleted()
	if err := s.storage.Tasks().Update(ctx, task); err != nil {
		return nil, false, fmt.Errorf("failed to update task: %w", err)
	}
	return task, completed, nil
}

// DeleteTask removes a task resolved from a reference.
func (s *TaskService) DeleteTask(ctx context.Context, ref string) (*domain.Task, error) {
	task, err := s.ResolveTask(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Tasks().Delete(ctx, task.ID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	return task, nil
}

// ResolveTask finds a task by full ID, unique ID prefix, or fuzzy title
// match, in that order.
func (s *TaskService) ResolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	if ref == "" {
		return nil, domain.ErrTaskNotFound
	}

	if task, err := s.storage.Tasks().FindByID(ctx, ref); err == nil {
		return task, nil
	} else if !errors.Is(err, domain.ErrTaskNotFound) {
		return nil, err
	}

	all, err := s.storage.Tasks().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var byPrefix []*domain.Task
	for _, task := range all {
		if strings.HasPrefix(task.ID, ref) {
			byPrefix = append(byPrefix, task)
		}
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousTaskRef, ref)
	}

	matches, err := s.storage.Tasks().FindByTitle(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	if len(matches) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return matches[0], nil
}

// resolveOrCreateCategory looks a category up by label, creating it with
// the default color when it does not exist yet.
func (s *TaskService) resolveOrCreateCategory(ctx context.Context, label string) (*domain.Category, error) {
	category, err := s.storage.Categories().FindByLabel(ctx, label)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	category, err = domain.NewCategory(label, domain.DefaultCategoryColor)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Categories().Save(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

// validateTimes checks clock strings and derives a missing end time from
// the start plus a duration.
func validateTimes(start, end *string, durationMinutes int) (*string, *string, error) {
	if start == nil || *start == "" {
		if end != nil && *end != "" {
			return nil, nil, ErrEndBeforeStart
		}
		return nil, nil, nil
	}

	if _, ok := schedule.ParseClock(*start); !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidTime, *start)
	}

	if end != nil && *end != "" {
		if _, ok := schedule.ParseClock(*end); !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidTime, *end)
		}
		return start, end, nil
	}

	if durationMinutes > 0 {
		derived, ok := schedule.AddClock(*start, durationMinutes)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidTime, *start)
		}
		return start, &derived, nil
	}

	return start, nil, nil
}
