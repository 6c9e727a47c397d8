package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/bayescore/numeric/gradient"
)

// Config holds all configuration for the numeric services.
type Config struct {
	Logging  LogConfig
	Gradient GradientConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// GradientConfig holds gradient estimator tuning.
type GradientConfig struct {
	MinRelStep float64 `envconfig:"GRAD_MIN_REL_STEP" default:"1e-9"`
	RelTol     float64 `envconfig:"GRAD_REL_TOL" default:"1e-3"`
	StepScale  float64 `envconfig:"GRAD_STEP_SCALE" default:"0.5"`
	Parallel   bool    `envconfig:"GRAD_PARALLEL" default:"false"`
}

// EstimatorConfig converts the section into the estimator's own config type.
func (g GradientConfig) EstimatorConfig() gradient.Config {
	return gradient.Config{
		MinRelStep: g.MinRelStep,
		RelTol:     g.RelTol,
		StepScale:  g.StepScale,
		Parallel:   g.Parallel,
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Gradient: GradientConfig{
			MinRelStep: 1e-9,
			RelTol:     1e-3,
			StepScale:  0.5,
			Parallel:   false,
		},
	}
}
