package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete [task]",
	Short: "Complete a task",
	Long:  `Mark a task as completed. The task can be given by ID, ID prefix, or (fuzzy) title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := taskService.CompleteTask(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		if jsonOutput {
			return printJSON(taskJSON(task))
		}

		fmt.Printf("✅ Task completed: %s (ID: %s)\n", task.Title, task.ID[:8])
		return nil
	},
}
