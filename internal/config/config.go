package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a spawnclock session.
// Values are populated from .spawnclock.yaml, SPAWNCLOCK_* env vars, and CLI
// flags.
type Config struct {
	LibraryDir          string `mapstructure:"library_dir"`
	Bell                bool   `mapstructure:"bell"`
	DefaultBuild        string `mapstructure:"default_build"`
	FetchTimeoutSeconds int    `mapstructure:"fetch_timeout_seconds"`
	Telemetry           bool   `mapstructure:"telemetry"`
	Verbose             bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. An empty LibraryDir
// means "use the per-user default location".
func Load() (Config, error) {
	viper.SetDefault("library_dir", "")
	viper.SetDefault("bell", true)
	viper.SetDefault("default_build", "")
	viper.SetDefault("fetch_timeout_seconds", 15)
	viper.SetDefault("telemetry", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
