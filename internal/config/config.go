package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	MonteCarlo MonteCarloConfig `mapstructure:"montecarlo"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GameConfig holds simulation mechanics configuration
type GameConfig struct {
	Grid      GridConfig      `mapstructure:"grid"`
	Obstacles ObstaclesConfig `mapstructure:"obstacles"`
}

// GridConfig holds grid dimensions
type GridConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// ObstaclesConfig holds obstacle generation settings
type ObstaclesConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Density float64 `mapstructure:"density"`
}

// MonteCarloConfig holds Monte Carlo batch settings
type MonteCarloConfig struct {
	Trials   int   `mapstructure:"trials"`
	MaxSteps int   `mapstructure:"max_steps"`
	Seed     int64 `mapstructure:"seed"` // 0 means time-seeded
}

// UIConfig holds visual client configuration
type UIConfig struct {
	WindowTitle      string `mapstructure:"window_title"`
	CellSize         int    `mapstructure:"cell_size"`
	GridMargin       int    `mapstructure:"grid_margin"`
	PanelWidth       int    `mapstructure:"panel_width"`
	AutoStepInterval int    `mapstructure:"auto_step_interval"` // ticks between auto-run steps
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Grid defaults
	v.SetDefault("game.grid.width", 12)
	v.SetDefault("game.grid.height", 12)
	v.SetDefault("game.obstacles.enabled", false)
	v.SetDefault("game.obstacles.density", 0.12)

	// Monte Carlo defaults
	v.SetDefault("montecarlo.trials", 1000)
	v.SetDefault("montecarlo.max_steps", 2000)
	v.SetDefault("montecarlo.seed", 0)

	// UI defaults
	v.SetDefault("ui.window_title", "Chance Encounter")
	v.SetDefault("ui.cell_size", 48)
	v.SetDefault("ui.grid_margin", 1)
	v.SetDefault("ui.panel_width", 220)
	v.SetDefault("ui.auto_step_interval", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/chance-encounter")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("CE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Grid.Width <= 0 || c.Game.Grid.Height <= 0 {
		return fmt.Errorf("game.grid dimensions must be positive")
	}
	if c.Game.Obstacles.Density < 0 || c.Game.Obstacles.Density >= 1 {
		return fmt.Errorf("game.obstacles.density must be in [0,1)")
	}

	if c.MonteCarlo.Trials <= 0 {
		return fmt.Errorf("montecarlo.trials must be positive")
	}
	if c.MonteCarlo.MaxSteps <= 0 {
		return fmt.Errorf("montecarlo.max_steps must be positive")
	}

	if c.UI.CellSize <= 0 {
		return fmt.Errorf("ui.cell_size must be positive")
	}
	if c.UI.GridMargin < 0 {
		return fmt.Errorf("ui.grid_margin must be non-negative")
	}
	if c.UI.PanelWidth <= 0 {
		return fmt.Errorf("ui.panel_width must be positive")
	}
	if c.UI.AutoStepInterval <= 0 {
		return fmt.Errorf("ui.auto_step_interval must be positive")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
