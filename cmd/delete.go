package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [task]",
	Short: "Delete a task",
	Long:  `Remove a task permanently. The task can be given by ID, ID prefix, or (fuzzy) title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := taskService.DeleteTask(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		if jsonOutput {
			return printJSON(taskJSON(task))
		}

		fmt.Printf("🗑️  Task deleted: %s (ID: %s)\n", task.Title, task.ID[:8])
		return nil
	},
}
