package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(map[string]interface{}{
				"layout": map[string]interface{}{
					"window_start_hour":   appConfig.Layout.WindowStartHour,
					"window_end_hour":     appConfig.Layout.WindowEndHour,
					"work_start_hour":     appConfig.Layout.WorkStartHour,
					"work_end_hour":       appConfig.Layout.WorkEndHour,
					"min_gap_minutes":     appConfig.Layout.MinGapMinutes,
					"min_visual_fraction": appConfig.Layout.MinVisualFraction,
					"fallback_start":      appConfig.Layout.FallbackStart,
					"month_cell_limit":    appConfig.Layout.MonthCellLimit,
				},
				"notifications": map[string]interface{}{
					"enabled": appConfig.Notifications.Enabled,
					"sound":   appConfig.Notifications.Sound,
				},
				"storage": map[string]interface{}{
					"data_dir": appConfig.Storage.DataDir,
					"db_path":  dbPath,
				},
			})
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n\n", configPath)
		fmt.Printf("Display window:  %02d:00-%02d:00\n", appConfig.Layout.WindowStartHour, appConfig.Layout.WindowEndHour)
		fmt.Printf("Work window:     %02d:00-%02d:00\n", appConfig.Layout.WorkStartHour, appConfig.Layout.WorkEndHour)
		fmt.Printf("Min gap:         %dm\n", appConfig.Layout.MinGapMinutes)
		fmt.Printf("Fallback slot:   %s\n", appConfig.Layout.FallbackStart)
		fmt.Printf("Month cell size: %d\n", appConfig.Layout.MonthCellLimit)
		fmt.Printf("Notifications:   %v\n", appConfig.Notifications.Enabled)
		fmt.Printf("Database:        %s\n", dbPath)
		return nil
	},
}
