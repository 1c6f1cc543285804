package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server exposes the calendar views and task mutations over
stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.MCP.Enabled {
			return fmt.Errorf("MCP server is disabled in the config file")
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "🚀 Starting MCP server on stdio (Ctrl+C to stop)")

		server := mcp.NewServer(scheduleService)
		if err := server.Start(context.Background()); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
