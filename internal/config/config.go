// Package config provides configuration management for Agenda.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rvalero/agenda-cli/internal/schedule"
)

// Config holds all configuration for the Agenda application.
type Config struct {
	FirstRun      bool               `mapstructure:"first_run"`
	Layout        LayoutConfig       `mapstructure:"layout"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// LayoutConfig holds the calendar axis parameters. The display window is
// the full rendered time axis; the work window is the narrower band used
// for gap discovery and anytime placement.
type LayoutConfig struct {
	WindowStartHour   int     `mapstructure:"window_start_hour"`
	WindowEndHour     int     `mapstructure:"window_end_hour"`
	WorkStartHour     int     `mapstructure:"work_start_hour"`
	WorkEndHour       int     `mapstructure:"work_end_hour"`
	MinGapMinutes     int     `mapstructure:"min_gap_minutes"`
	MinVisualFraction float64 `mapstructure:"min_visual_fraction"`
	FallbackStart     string  `mapstructure:"fallback_start"`
	MonthCellLimit    int     `mapstructure:"month_cell_limit"`
}

// DefaultLayoutConfig returns the documented default layout.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		WindowStartHour:   6,
		WindowEndHour:     22,
		WorkStartHour:     9,
		WorkEndHour:       20,
		MinGapMinutes:     30,
		MinVisualFraction: 0.03,
		FallbackStart:     "20:00",
		MonthCellLimit:    3,
	}
}

// ToLayout converts the config section into the engine's layout value.
// Out-of-range or malformed fields fall back to the engine defaults so a
// hand-edited config file cannot produce an unrenderable axis.
func (c LayoutConfig) ToLayout() schedule.Layout {
	l := schedule.DefaultLayout()

	if c.WindowStartHour >= 0 && c.WindowEndHour <= 24 && c.WindowStartHour < c.WindowEndHour {
		l.WindowStartHour = c.WindowStartHour
		l.WindowEndHour = c.WindowEndHour
	}
	if c.WorkStartHour >= l.WindowStartHour && c.WorkEndHour <= l.WindowEndHour && c.WorkStartHour < c.WorkEndHour {
		l.WorkStartHour = c.WorkStartHour
		l.WorkEndHour = c.WorkEndHour
	}
	if c.MinGapMinutes > 0 {
		l.MinGapMinutes = c.MinGapMinutes
	}
	if c.MinVisualFraction > 0 && c.MinVisualFraction < 1 {
		l.MinVisualFraction = c.MinVisualFraction
	}
	if mins, ok := schedule.ParseClock(c.FallbackStart); ok {
		l.FallbackStartMinutes = mins
	}
	if c.MonthCellLimit > 0 {
		l.MonthCellLimit = c.MonthCellLimit
	}
	return l
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorScheduled  string `mapstructure:"color_scheduled"`
	ColorAnytime    string `mapstructure:"color_anytime"`
	ColorCompleted  string `mapstructure:"color_completed"`
	ColorGap        string `mapstructure:"color_gap"`
	ColorAxis       string `mapstructure:"color_axis"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorHelp       string `mapstructure:"color_help"`
	IconApp         string `mapstructure:"icon_app"`
	IconScheduled   string `mapstructure:"icon_scheduled"`
	IconAnytime     string `mapstructure:"icon_anytime"`
	IconDone        string `mapstructure:"icon_done"`
	IconOverflow    string `mapstructure:"icon_overflow"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorScheduled: "#7C6FE0",
		ColorAnytime:   "#4ECDC4",
		ColorCompleted: "#6B7280",
		ColorGap:       "#2ECC71",
		ColorAxis:      "#4B5563",
		ColorTitle:     "#A0AEC0",
		ColorHelp:      "#95A5A6",
		IconApp:        "📅",
		IconScheduled:  "🕘",
		IconAnytime:    "◌",
		IconDone:       "✓",
		IconOverflow:   "…",
	}
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FirstRun: true,
		Layout:   DefaultLayoutConfig(),
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.agenda",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.agenda" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".agenda")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("first_run", cfg.FirstRun)
	viper.Set("layout.window_start_hour", cfg.Layout.WindowStartHour)
	viper.Set("layout.window_end_hour", cfg.Layout.WindowEndHour)
	viper.Set("layout.work_start_hour", cfg.Layout.WorkStartHour)
	viper.Set("layout.work_end_hour", cfg.Layout.WorkEndHour)
	viper.Set("layout.min_gap_minutes", cfg.Layout.MinGapMinutes)
	viper.Set("layout.min_visual_fraction", cfg.Layout.MinVisualFraction)
	viper.Set("layout.fallback_start", cfg.Layout.FallbackStart)
	viper.Set("layout.month_cell_limit", cfg.Layout.MonthCellLimit)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("mcp.enabled", cfg.MCP.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_scheduled", cfg.Theme.ColorScheduled)
	viper.Set("theme.color_anytime", cfg.Theme.ColorAnytime)
	viper.Set("theme.color_completed", cfg.Theme.ColorCompleted)
	viper.Set("theme.color_gap", cfg.Theme.ColorGap)
	viper.Set("theme.color_axis", cfg.Theme.ColorAxis)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_scheduled", cfg.Theme.IconScheduled)
	viper.Set("theme.icon_anytime", cfg.Theme.IconAnytime)
	viper.Set("theme.icon_done", cfg.Theme.IconDone)
	viper.Set("theme.icon_overflow", cfg.Theme.IconOverflow)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".agenda", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "agenda.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	layout := DefaultLayoutConfig()
	viper.SetDefault("first_run", true)
	viper.SetDefault("layout.window_start_hour", layout.WindowStartHour)
	viper.SetDefault("layout.window_end_hour", layout.WindowEndHour)
	viper.SetDefault("layout.work_start_hour", layout.WorkStartHour)
	viper.SetDefault("layout.work_end_hour", layout.WorkEndHour)
	viper.SetDefault("layout.min_gap_minutes", layout.MinGapMinutes)
	viper.SetDefault("layout.min_visual_fraction", layout.MinVisualFraction)
	viper.SetDefault("layout.fallback_start", layout.FallbackStart)
	viper.SetDefault("layout.month_cell_limit", layout.MonthCellLimit)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("mcp.enabled", true)
	viper.SetDefault("storage.data_dir", "~/.agenda")

	theme := DefaultThemeConfig()
	viper.SetDefault("theme.color_scheduled", theme.ColorScheduled)
	viper.SetDefault("theme.color_anytime", theme.ColorAnytime)
	viper.SetDefault("theme.color_completed", theme.ColorCompleted)
	viper.SetDefault("theme.color_gap", theme.ColorGap)
	viper.SetDefault("theme.color_axis", theme.ColorAxis)
	viper.SetDefault("theme.color_title", theme.ColorTitle)
	viper.SetDefault("theme.color_help", theme.ColorHelp)
	viper.SetDefault("theme.icon_app", theme.IconApp)
	viper.SetDefault("theme.icon_scheduled", theme.IconScheduled)
	viper.SetDefault("theme.icon_anytime", theme.IconAnytime)
	viper.SetDefault("theme.icon_done", theme.IconDone)
	viper.SetDefault("theme.icon_overflow", theme.IconOverflow)
}
