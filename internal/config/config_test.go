package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"LibraryDir", cfg.LibraryDir, ""},
		{"Bell", cfg.Bell, true},
		{"DefaultBuild", cfg.DefaultBuild, ""},
		{"FetchTimeoutSeconds", cfg.FetchTimeoutSeconds, 15},
		{"Telemetry", cfg.Telemetry, true},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "library_dir",
			envKey: "SPAWNCLOCK_LIBRARY_DIR",
			envVal: "/tmp/builds",
			field:  func(c Config) any { return c.LibraryDir },
			want:   "/tmp/builds",
		},
		{
			name:   "bell",
			envKey: "SPAWNCLOCK_BELL",
			envVal: "false",
			field:  func(c Config) any { return c.Bell },
			want:   false,
		},
		{
			name:   "default_build",
			envKey: "SPAWNCLOCK_DEFAULT_BUILD",
			envVal: "reaper-expand",
			field:  func(c Config) any { return c.DefaultBuild },
			want:   "reaper-expand",
		},
		{
			name:   "fetch_timeout_seconds",
			envKey: "SPAWNCLOCK_FETCH_TIMEOUT_SECONDS",
			envVal: "30",
			field:  func(c Config) any { return c.FetchTimeoutSeconds },
			want:   30,
		},
		{
			name:   "verbose",
			envKey: "SPAWNCLOCK_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("SPAWNCLOCK")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
