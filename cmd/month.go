package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month [date]",
	Short: "Show a compact month overview",
	Long: `Show one line per day of the month: the first few tasks (timed
first) and an overflow count. Defaults to the current month.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dayKey := resolveDayArg(args)

		cells, skipped, err := scheduleService.Month(ctx, dayKey, categories)
		if err != nil {
			return fmt.Errorf("failed to build month: %w", err)
		}

		if jsonOutput {
			cellList := make([]map[string]interface{}, 0, len(cells))
			for _, cell := range cells {
				titles := make([]string, 0, len(cell.Visible))
				for _, task := range cell.Visible {
					titles = append(titles, task.Title)
				}
				cellList = append(cellList, map[string]interface{}{
					"date":      cell.DayKey,
					"visible":   titles,
					"remaining": cell.RemainingCount,
				})
			}
			return printJSON(map[string]interface{}{
				"cells":             cellList,
				"skipped_malformed": skipped,
			})
		}

		for _, cell := range cells {
			if len(cell.Visible) == 0 {
				continue
			}
			fmt.Printf("%s  ", cell.DayKey)
			for i, task := range cell.Visible {
				if i > 0 {
					fmt.Print(" · ")
				}
				fmt.Print(task.Title)
			}
			if cell.RemainingCount > 0 {
				fmt.Printf(" %s+%d", appConfig.Theme.IconOverflow, cell.RemainingCount)
			}
			fmt.Println()
		}
		printSkipped(skipped)
		return nil
	},
}
