package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Environment overrides.
const (
	EnvLayout   = "DUNGEONWALK_LAYOUT"
	EnvLogLevel = "DUNGEONWALK_LOG_LEVEL"
	EnvLogFile  = "DUNGEONWALK_LOG_FILE"
	EnvAPIKey   = "HONEYCOMB_DUNGEONWALK_API_KEY"
	EnvDataset  = "HONEYCOMB_DUNGEONWALK_DATASET"
)

// Load reads configuration and applies environment overrides.
// Search order: customPath -> ~/.dungeonwalk/config.yaml -> ./configs/config.yaml -> embedded default.
// Files only need to set the keys they change.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		ApplyEnv(&cfg)
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		ApplyEnv(&cfg)
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default()
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvLayout); v != "" {
		cfg.Map.Layout = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Telemetry.APIKey = v
	}
	if v := os.Getenv(EnvDataset); v != "" {
		cfg.Telemetry.Dataset = v
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeonwalk", filename)
}
