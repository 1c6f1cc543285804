package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/services"
)

var nextNotify bool

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next scheduled task today",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		task, err := scheduleService.Next(ctx, now.Format("2006-01-02"), now.Format("15:04"))
		if errors.Is(err, services.ErrNoUpcomingTask) {
			if jsonOutput {
				return printJSON(map[string]interface{}{"task": nil})
			}
			fmt.Println("Nothing left on today's schedule.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find next task: %w", err)
		}

		if nextNotify && notifier.IsEnabled() {
			if err := notifier.NotifyUpcomingTask(task.Title, *task.StartTime); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: notification failed: %v\n", err)
			}
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{"task": taskJSON(task)})
		}

		fmt.Printf("%s %s  %s\n", appConfig.Theme.IconScheduled, *task.StartTime, task.Title)
		return nil
	},
}

func init() {
	nextCmd.Flags().BoolVar(&nextNotify, "notify", false, "Also send a desktop notification")
}
