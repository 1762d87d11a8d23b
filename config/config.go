package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full simulation configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Generate   GenerateConfig   `yaml:"generate"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controls the clock loop and settlement.
type SimulationConfig struct {
	HouseTake            float64 `yaml:"house_take"`             // fraction of the pool, 0-1
	CompletionRateMean   float64 `yaml:"completion_rate_mean"`   // mean of the daily normal draw
	CompletionRateStdDev float64 `yaml:"completion_rate_stddev"` // stddev of the daily normal draw
	Duration             string  `yaml:"duration"`               // week | month | 3month | year
	Seed                 int64   `yaml:"seed"`                   // 0 = seed from the clock
}

// GenerateConfig controls the synthetic data generator.
type GenerateConfig struct {
	Users           int     `yaml:"users"`
	Assignments     int     `yaml:"assignments"`
	MinBalance      float64 `yaml:"min_balance"`
	MaxBalance      float64 `yaml:"max_balance"`
	MinDurationDays int     `yaml:"min_duration_days"`
	MaxDurationDays int     `yaml:"max_duration_days"`
}

// LogConfig controls log level and format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML config plus a .env file if one exists. Env values
// override the YAML for the keys they cover.
func Load(path string) (*Config, error) {
	// Load .env if present (silences the error when there is none)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no YAML file exists.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg
}

// applyEnvOverrides replaces values with environment variables when set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PROCRAST_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulation.Seed = seed
		}
	}
}

// setDefaults makes sure required values are sane.
func setDefaults(cfg *Config) {
	if cfg.Simulation.HouseTake <= 0 {
		cfg.Simulation.HouseTake = 0.05
	}
	if cfg.Simulation.CompletionRateMean <= 0 {
		cfg.Simulation.CompletionRateMean = 0.7
	}
	if cfg.Simulation.CompletionRateStdDev <= 0 {
		cfg.Simulation.CompletionRateStdDev = 0.1
	}
	if cfg.Simulation.Duration == "" {
		cfg.Simulation.Duration = "month"
	}
	if cfg.Generate.Users <= 0 {
		cfg.Generate.Users = 100
	}
	if cfg.Generate.Assignments <= 0 {
		cfg.Generate.Assignments = 50
	}
	if cfg.Generate.MinBalance <= 0 {
		cfg.Generate.MinBalance = 100
	}
	if cfg.Generate.MaxBalance <= 0 {
		cfg.Generate.MaxBalance = 1000
	}
	if cfg.Generate.MinDurationDays <= 0 {
		cfg.Generate.MinDurationDays = 1
	}
	if cfg.Generate.MaxDurationDays <= 0 {
		cfg.Generate.MaxDurationDays = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
