package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week [start-date]",
	Short: "Show seven days starting at a date",
	Long: `Show laid-out schedules for seven consecutive days. Each day is
packed independently. Defaults to a week starting today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		startKey := resolveDayArg(args)

		grid, skipped, err := scheduleService.Week(ctx, startKey, categories)
		if err != nil {
			return fmt.Errorf("failed to build week: %w", err)
		}

		layout := scheduleService.Layout()

		if jsonOutput {
			days := make([]map[string]interface{}, 0, len(grid.Days))
			for _, day := range grid.Days {
				days = append(days, dayJSON(day, layout))
			}
			return printJSON(map[string]interface{}{
				"start_date":        grid.StartKey,
				"days":              days,
				"skipped_malformed": skipped,
			})
		}

		for _, day := range grid.Days {
			fmt.Printf("%s %s\n", appConfig.Theme.IconApp, day.DayKey)
			printDaySchedule(day, layout)
			fmt.Println()
		}
		printSkipped(skipped)
		return nil
	},
}
