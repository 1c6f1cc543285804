package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/schedule"
)

var gapsNotify bool

// gapsCmd represents the gaps command
var gapsCmd = &cobra.Command{
	Use:   "gaps [date]",
	Short: "Show free intervals in the work window",
	Long: `Show the free intervals between timed tasks inside the configured
work window. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		dayKey := resolveDayArg(args)

		gaps, err := scheduleService.Gaps(ctx, dayKey)
		if err != nil {
			return fmt.Errorf("failed to find gaps: %w", err)
		}

		if gapsNotify && notifier.IsEnabled() && len(gaps) > 0 {
			first := gaps[0]
			if err := notifier.NotifyFreeSlot(
				schedule.FormatClock(first.StartMinutes),
				schedule.FormatClock(first.EndMinutes)); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: notification failed: %v\n", err)
			}
		}

		if jsonOutput {
			gapList := make([]map[string]interface{}, 0, len(gaps))
			for _, gap := range gaps {
				gapList = append(gapList, gapJSON(gap))
			}
			return printJSON(map[string]interface{}{
				"date":  dayKey,
				"gaps":  gapList,
				"count": len(gapList),
			})
		}

		if len(gaps) == 0 {
			fmt.Println("No free gaps.")
			return nil
		}

		fmt.Printf("Free on %s:\n", dayKey)
		for _, gap := range gaps {
			fmt.Printf("  %s-%s  (%dm)\n",
				schedule.FormatClock(gap.StartMinutes),
				schedule.FormatClock(gap.EndMinutes),
				gap.Length())
		}
		return nil
	},
}

func init() {
	gapsCmd.Flags().BoolVar(&gapsNotify, "notify", false, "Send a desktop notification for the first free slot")
}
