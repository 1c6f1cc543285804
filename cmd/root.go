// Package cmd provides the CLI commands for the Agenda application.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvalero/agenda-cli/internal/adapters/git"
	"github.com/rvalero/agenda-cli/internal/adapters/notification"
	"github.com/rvalero/agenda-cli/internal/adapters/storage"
	"github.com/rvalero/agenda-cli/internal/config"
	"github.com/rvalero/agenda-cli/internal/ports"
	"github.com/rvalero/agenda-cli/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	jsonOutput bool
	categories []string

	// Global dependencies
	storageAdapter  ports.Storage
	taskService     *services.TaskService
	scheduleService *services.ScheduleService
	categoryService *services.CategoryService
	gitDetector     ports.GitDetector
	notifier        *notification.Notifier
	appConfig       *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Agenda - A calendar-first task planner for your terminal",
	Long: `Agenda is a command-line task calendar. Tasks live on days; timed
tasks are packed onto a visual time axis, anytime tasks are offered the
free gaps in your work hours.

Run "agenda day" with no arguments to see today.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDay(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.agenda/agenda.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringSliceVarP(&categories, "category", "c", nil, "Only show tasks in these categories")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Agenda CLI\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	// Initialize notifier
	notifier = notification.New(&appConfig.Notifications)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(appConfig)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	storageAdapter, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize git detector
	gitDetector = git.NewDetector()

	// Initialize services
	taskService = services.NewTaskService(storageAdapter, gitDetector)
	scheduleService = services.NewScheduleService(storageAdapter, taskService, appConfig.Layout.ToLayout())
	categoryService = services.NewCategoryService(storageAdapter)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}

// resolveDayArg turns an optional positional date argument into a day key
// input, defaulting to today.
func resolveDayArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return time.Now().Format("2006-01-02")
}
