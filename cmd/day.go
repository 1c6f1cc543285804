package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/adapters/tui"
	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/services"
)

var dayInteractive bool

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show one day's schedule",
	Long: `Show the laid-out schedule for a day: timed blocks on the axis,
anytime tasks placed into free gaps, and the gaps themselves. Defaults
to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay,
}

func runDay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	dayKey := resolveDayArg(args)

	day, skipped, err := scheduleService.Day(ctx, dayKey, categories)
	if err != nil {
		return fmt.Errorf("failed to build day: %w", err)
	}

	if dayInteractive {
		return runDayView(ctx, day)
	}

	if jsonOutput {
		data := dayJSON(day, scheduleService.Layout())
		data["skipped_malformed"] = skipped
		return printJSON(data)
	}

	fmt.Printf("%s %s\n\n", appConfig.Theme.IconApp, day.DayKey)
	printDaySchedule(day, scheduleService.Layout())
	printSkipped(skipped)
	return nil
}

// runDayView launches the interactive day view wired to the services.
func runDayView(ctx context.Context, day domain.DaySchedule) error {
	model := tui.NewModel(day, scheduleService.Layout(), &appConfig.Theme, tui.Callbacks{
		LoadDay: func(dayKey string) (domain.DaySchedule, error) {
			loaded, _, err := scheduleService.Day(ctx, dayKey, categories)
			return loaded, err
		},
		ToggleTask: func(taskID string) error {
			_, _, err := taskService.ToggleTask(ctx, taskID)
			return err
		},
		RenameTask: func(taskID, title string) error {
			_, err := taskService.EditTask(ctx, services.EditTaskRequest{
				Ref:   taskID,
				Title: &title,
			})
			return err
		},
	})
	return tui.Run(model)
}

func init() {
	dayCmd.Flags().BoolVarP(&dayInteractive, "interactive", "i", false, "Open the interactive day view")
}
