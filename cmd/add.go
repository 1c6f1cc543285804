package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/services"
)

var (
	addDate     string
	addStart    string
	addEnd      string
	addDuration int
	addNotes    string
	addCategory string
	addHere     bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a task to a day. Without --at the task is an "anytime" task and
gets offered a free slot; with --at (and --to or --for) it is pinned to
the time axis.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		title := strings.Join(args, " ")

		req := services.AddTaskRequest{
			Title:           title,
			Notes:           addNotes,
			DateKey:         addDate,
			DurationMinutes: addDuration,
			UseGitContext:   addHere,
		}
		if addDate == "" {
			req.DateKey = resolveDayArg(nil)
		}
		if addStart != "" {
			req.StartTime = &addStart
		}
		if addEnd != "" {
			req.EndTime = &addEnd
		}
		if addCategory != "" {
			req.CategoryLabel = &addCategory
		}
		if addHere {
			req.WorkingDir, _ = os.Getwd()
		}

		task, err := taskService.AddTask(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		if jsonOutput {
			return printJSON(taskJSON(task))
		}

		when := "anytime"
		if task.IsScheduled() {
			when = *task.StartTime
			if task.EndTime != nil {
				when += "-" + *task.EndTime
			}
		}
		fmt.Printf("✅ Task added: %s on %s (%s, ID: %s)\n", task.Title, task.DateKey, when, task.ID[:8])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Day for the task (default: today)")
	addCmd.Flags().StringVar(&addStart, "at", "", "Start time HH:MM")
	addCmd.Flags().StringVar(&addEnd, "to", "", "End time HH:MM")
	addCmd.Flags().IntVar(&addDuration, "for", 0, "Duration in minutes (alternative to --to)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes")
	addCmd.Flags().StringVar(&addCategory, "in", "", "Category label (created on first use)")
	addCmd.Flags().BoolVar(&addHere, "here", false, "Use the current git repository name as the category")
}
