package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the guard engine configuration.
type Config struct {
	Safety    SafetyConfig    `yaml:"safety"`
	Limits    LimitsConfig    `yaml:"limits"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SafetyConfig seeds the validator's cache and exception lists.
type SafetyConfig struct {
	CacheCapacity  int      `yaml:"cache_capacity"`  // verdict cache entries, default 500
	Whitelist      []string `yaml:"whitelist"`       // exact strings always treated as safe
	CustomPatterns []string `yaml:"custom_patterns"` // operator-supplied blocking rules
}

// LimitsConfig bounds structural action parameters.
type LimitsConfig struct {
	MaxCoordinate   int     `yaml:"max_coordinate"`    // per axis, default 10000
	MaxScrollAmount int     `yaml:"max_scroll_amount"` // default 100
	MaxWaitSeconds  float64 `yaml:"max_wait_seconds"`  // default 60
	MaxTextLength   int     `yaml:"max_text_length"`   // default 10000
}

// TelemetryConfig controls OTEL metric emission.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Service string `yaml:"service"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Safety.CacheCapacity <= 0 {
		cfg.Safety.CacheCapacity = 500
	}
	if cfg.Limits.MaxCoordinate <= 0 {
		cfg.Limits.MaxCoordinate = 10000
	}
	if cfg.Limits.MaxScrollAmount <= 0 {
		cfg.Limits.MaxScrollAmount = 100
	}
	if cfg.Limits.MaxWaitSeconds <= 0 {
		cfg.Limits.MaxWaitSeconds = 60
	}
	if cfg.Limits.MaxTextLength <= 0 {
		cfg.Limits.MaxTextLength = 10000
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = "computer-use-guard"
	}
}
