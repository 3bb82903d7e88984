package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Chart   ChartConfig   `mapstructure:"chart"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
	Debug   bool          `mapstructure:"debug"`
}

// DatasetConfig locates the enrollment data.
type DatasetConfig struct {
	Path          string `mapstructure:"path"`
	Sheet         string `mapstructure:"sheet"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
	PostgresTable string `mapstructure:"postgres_table"`
	MinYear       int    `mapstructure:"min_year"`
	MaxYear       int    `mapstructure:"max_year"`
}

// CacheConfig controls the SQLite dataset cache.
type CacheConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// ChartConfig holds interaction defaults.
type ChartConfig struct {
	ZoomInFactor  float64 `mapstructure:"zoom_in_factor"`
	ZoomOutFactor float64 `mapstructure:"zoom_out_factor"`
	PanStep       int     `mapstructure:"pan_step"`
	DefaultMode   string  `mapstructure:"default_mode"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	Theme       string `mapstructure:"theme"`
	ShowTooltip bool   `mapstructure:"show_tooltip"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Dir returns the directory holding config, cache and logs.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "enrollview")
}

// LoadConfig loads config.yaml from $HOME/.config/enrollview or the current
// directory, overlaid with ENROLLVIEW_* environment variables. A missing
// file yields the defaults.
func LoadConfig() (*Config, error) {
	return LoadConfigFromPath("")
}

// LoadConfigFromPath loads configuration from an explicit file. An empty
// path searches the default locations.
func LoadConfigFromPath(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ENROLLVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyDefaults(v)
	return v
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Dataset.MinYear > cfg.Dataset.MaxYear {
		return fmt.Errorf("dataset.min_year (%d) must be <= dataset.max_year (%d)",
			cfg.Dataset.MinYear, cfg.Dataset.MaxYear)
	}
	if cfg.Dataset.PostgresDSN != "" && cfg.Dataset.PostgresTable == "" {
		return fmt.Errorf("dataset.postgres_table cannot be empty when dataset.postgres_dsn is set")
	}

	if !(cfg.Chart.ZoomInFactor > 0 && cfg.Chart.ZoomInFactor < 1) {
		return fmt.Errorf("chart.zoom_in_factor must be between 0 and 1 exclusive, got %v", cfg.Chart.ZoomInFactor)
	}
	if !(cfg.Chart.ZoomOutFactor > 1) || math.IsInf(cfg.Chart.ZoomOutFactor, 0) {
		return fmt.Errorf("chart.zoom_out_factor must be a finite number > 1, got %v", cfg.Chart.ZoomOutFactor)
	}
	if cfg.Chart.PanStep < 1 {
		return fmt.Errorf("chart.pan_step must be >= 1, got %d", cfg.Chart.PanStep)
	}
	if !oneOf(cfg.Chart.DefaultMode, "counts", "share") {
		return fmt.Errorf("chart.default_mode must be one of: [counts share], got %s", cfg.Chart.DefaultMode)
	}

	if !oneOf(cfg.UI.Theme, "dark", "light") {
		return fmt.Errorf("ui.theme must be one of: [dark light], got %s", cfg.UI.Theme)
	}
	if !oneOf(strings.ToLower(cfg.Log.Level), "debug", "info", "warn", "error") {
		return fmt.Errorf("log.level must be one of: [debug info warn error], got %s", cfg.Log.Level)
	}

	return nil
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("dataset.postgres_dsn", "")
	v.SetDefault("dataset.postgres_table", "medicaid_enrollment")
	v.SetDefault("dataset.min_year", 2014)
	v.SetDefault("dataset.max_year", 2021)

	v.SetDefault("cache.path", filepath.Join(Dir(), "cache.db"))
	v.SetDefault("cache.enabled", true)

	v.SetDefault("chart.zoom_in_factor", 0.5)
	v.SetDefault("chart.zoom_out_factor", 2.0)
	v.SetDefault("chart.pan_step", 4)
	v.SetDefault("chart.default_mode", "counts")

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.show_tooltip", true)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetDefault("debug", false)
}
