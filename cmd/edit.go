package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/services"
)

var (
	editTitle      string
	editNotes      string
	editDate       string
	editStart      string
	editEnd        string
	editClearTimes bool
	editCategory   string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [task]",
	Short: "Edit a task",
	Long: `Update a task's title, day, times, notes, or category. Only the
fields passed as flags change. --anytime clears both times so the task
goes back to the free-slot pool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := services.EditTaskRequest{
			Ref:        args[0],
			ClearTimes: editClearTimes,
		}
		if cmd.Flags().Changed("title") {
			req.Title = &editTitle
		}
		if cmd.Flags().Changed("notes") {
			req.Notes = &editNotes
		}
		if cmd.Flags().Changed("date") {
			req.DateKey = &editDate
		}
		if cmd.Flags().Changed("at") {
			req.StartTime = &editStart
		}
		if cmd.Flags().Changed("to") {
			req.EndTime = &editEnd
		}
		if cmd.Flags().Changed("in") {
			req.CategoryLabel = &editCategory
		}

		task, err := taskService.EditTask(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to edit task: %w", err)
		}

		if jsonOutput {
			return printJSON(taskJSON(task))
		}

		fmt.Printf("✏️  Task updated: %s (ID: %s)\n", task.Title, task.ID[:8])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "Move to another day")
	editCmd.Flags().StringVar(&editStart, "at", "", "New start time HH:MM")
	editCmd.Flags().StringVar(&editEnd, "to", "", "New end time HH:MM")
	editCmd.Flags().BoolVar(&editClearTimes, "anytime", false, "Clear times, making the task anytime")
	editCmd.Flags().StringVar(&editCategory, "in", "", "New category label (empty to uncategorize)")
}
