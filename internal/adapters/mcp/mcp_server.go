// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/ports"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.MCPScheduleProvider
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(provider ports.MCPScheduleProvider) *Server {
	s := &Server{
		provider: provider,
	}

	s.server = server.NewMCPServer(
		"agenda-calendar",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: view_day
	viewDayTool := mcp.NewTool(
		"view_day",
		mcp.WithDescription("Get the laid-out schedule for one day: timed blocks, placed anytime tasks, and free gaps"),
		mcp.WithString(
			"date",
			mcp.Required(),
			mcp.Description("The day to view, as YYYY-MM-DD or an ISO timestamp"),
		),
		mcp.WithString(
			"categories",
			mcp.Description("Optional comma-separated category labels to filter by"),
		),
	)
	s.server.AddTool(viewDayTool, s.handleViewDay)

	// Tool: view_week
	viewWeekTool := mcp.NewTool(
		"view_week",
		mcp.WithDescription("Get laid-out schedules for seven consecutive days"),
		mcp.WithString(
			"start_date",
			mcp.Required(),
			mcp.Description("The first day of the week, as YYYY-MM-DD or an ISO timestamp"),
		),
		mcp.WithString(
			"categories",
			mcp.Description("Optional comma-separated category labels to filter by"),
		),
	)
	s.server.AddTool(viewWeekTool, s.handleViewWeek)

	// Tool: find_gaps
	findGapsTool := mcp.NewTool(
		"find_gaps",
		mcp.WithDescription("Find the free intervals in the work window for one day"),
		mcp.WithString(
			"date",
			mcp.Required(),
			mcp.Description("The day to inspect, as YYYY-MM-DD or an ISO timestamp"),
		),
	)
	s.server.AddTool(findGapsTool, s.handleFindGaps)

	// Tool: create_task
	createTaskTool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Create a new task, scheduled or anytime"),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("The title of the task"),
		),
		mcp.WithString(
			"date",
			mcp.Required(),
			mcp.Description("The day the task belongs to, as YYYY-MM-DD or an ISO timestamp"),
		),
		mcp.WithString(
			"start_time",
			mcp.Description("Optional start time HH:MM; omit for an anytime task"),
		),
		mcp.WithString(
			"end_time",
			mcp.Description("Optional end time HH:MM"),
		),
		mcp.WithString(
			"category",
			mcp.Description("Optional category label, created on first use"),
		),
	)
	s.server.AddTool(createTaskTool, s.handleCreateTask)

	// Tool: complete_task
	completeTaskTool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Mark a task as completed"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to complete"),
		),
	)
	s.server.AddTool(completeTaskTool, s.handleCompleteTask)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// handleViewDay handles the view_day tool.
func (s *Server) handleViewDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date is required: " + err.Error()), nil
	}

	day, skipped, err := s.provider.Day(ctx, date, splitCategories(request.GetString("categories", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build day: %v", err)), nil
	}

	result := dayData(day)
	result["skipped_malformed"] = skipped

	return marshalResult(result)
}

// handleViewWeek handles the view_week tool.
func (s *Server) handleViewWeek(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startDate, err := request.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError("start_date is required: " + err.Error()), nil
	}

	grid, skipped, err := s.provider.Week(ctx, startDate, splitCategories(request.GetString("categories", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build week: %v", err)), nil
	}

	days := make([]map[string]interface{}, 0, len(grid.Days))
	for _, day := range grid.Days {
		days = append(days, dayData(day))
	}

	result := map[string]interface{}{
		"start_date":        grid.StartKey,
		"days":              days,
		"skipped_malformed": skipped,
	}

	return marshalResult(result)
}

// handleFindGaps handles the find_gaps tool.
func (s *Server) handleFindGaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date is required: " + err.Error()), nil
	}

	gaps, err := s.provider.Gaps(ctx, date)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to find gaps: %v", err)), nil
	}

	gapList := make([]map[string]interface{}, 0, len(gaps))
	for _, gap := range gaps {
		gapList = append(gapList, map[string]interface{}{
			"start":   schedule.FormatClock(gap.StartMinutes),
			"end":     schedule.FormatClock(gap.EndMinutes),
			"minutes": gap.Length(),
		})
	}

	result := map[string]interface{}{
		"date":  date,
		"gaps":  gapList,
		"count": len(gapList),
	}

	return marshalResult(result)
}

// handleCreateTask handles the create_task tool.
func (s *Server) handleCreateTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}
	date, err := request.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date is required: " + err.Error()), nil
	}

	task, err := s.provider.CreateTask(ctx, title, date,
		optionalString(request, "start_time"),
		optionalString(request, "end_time"),
		optionalString(request, "category"),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create task: %v", err)), nil
	}

	return marshalResult(taskData(task))
}

// handleCompleteTask handles the complete_task tool.
func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	task, err := s.provider.CompleteTask(ctx, taskID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete task: %v", err)), nil
	}

	return marshalResult(taskData(task))
}

// dayData converts one day schedule into a JSON-friendly map. Offsets are
// translated back to clock strings so callers never deal with the
// minute axis.
func dayData(day domain.DaySchedule) map[string]interface{} {
	blocks := make([]map[string]interface{}, 0, len(day.Scheduled)+len(day.Anytime))
	for _, block := range day.Blocks() {
		blocks = append(blocks, blockData(block))
	}

	gaps := make([]map[string]interface{}, 0, len(day.Gaps))
	for _, gap := range day.Gaps {
		gaps = append(gaps, map[string]interface{}{
			"start":   schedule.FormatClock(gap.StartMinutes),
			"end":     schedule.FormatClock(gap.EndMinutes),
			"minutes": gap.Length(),
		})
	}

	return map[string]interface{}{
		"date":   day.DayKey,
		"blocks": blocks,
		"gaps":   gaps,
	}
}

// blockData converts one placed block into a JSON-friendly map.
func blockData(block domain.PlacementBlock) map[string]interface{} {
	data := map[string]interface{}{
		"task_id":        block.TaskID,
		"title":          block.Task.Title,
		"anytime":        block.IsAnytime,
		"completed":      block.Task.Completed,
		"offset_minutes": block.StartMinutes,
		"length_minutes": block.LengthMinutes,
	}
	if block.Task.StartTime != nil {
		data["start_time"] = *block.Task.StartTime
	}
	if block.Task.EndTime != nil {
		data["end_time"] = *block.Task.EndTime
	}
	if block.Task.CategoryID != nil {
		data["category_id"] = *block.Task.CategoryID
	}
	return data
}

// taskData converts one task into a JSON-friendly map.
func taskData(task *domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":        task.ID,
		"title":     task.Title,
		"date":      task.DateKey,
		"completed": task.Completed,
	}
	if task.Notes != "" {
		data["notes"] = task.Notes
	}
	if task.StartTime != nil {
		data["start_time"] = *task.StartTime
	}
	if task.EndTime != nil {
		data["end_time"] = *task.EndTime
	}
	if task.CategoryID != nil {
		data["category_id"] = *task.CategoryID
	}
	return data
}

// marshalResult renders a result map as an indented JSON text result.
func marshalResult(result map[string]interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// optionalString returns a pointer to a string argument, or nil when the
// argument is absent or empty.
func optionalString(request mcp.CallToolRequest, key string) *string {
	if v := request.GetString(key, ""); v != "" {
		return &v
	}
	return nil
}

// splitCategories parses the comma-separated categories argument.
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}

	var labels []string
	for _, part := range strings.Split(raw, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
