package ports

import (
	"context"

	"github.com/rvalero/agenda-cli/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error
}

// MCPScheduleProvider supplies laid-out calendar data and task mutations
// to the MCP server. This is a driven port (implemented by the services
// layer).
type MCPScheduleProvider interface {
	// Day returns the placed schedule for one day plus the number of
	// records skipped for malformed dates.
	Day(ctx context.Context, dayKey string, selected []string) (domain.DaySchedule, int, error)

	// Week returns seven consecutive day schedules starting at startKey.
	Week(ctx context.Context, startKey string, selected []string) (domain.WeekGrid, int, error)

	// Gaps returns the free intervals for one day.
	Gaps(ctx context.Context, dayKey string) ([]domain.Gap, error)

	// CreateTask adds a task and returns it.
	CreateTask(ctx context.Context, title, dateKey string, startTime, endTime, categoryLabel *string) (*domain.Task, error)

	// CompleteTask marks a task as done.
	CompleteTask(ctx context.Context, taskID string) (*domain.Task, error)
}
