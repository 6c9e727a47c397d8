// Package config provides 12-factor configuration for the numeric services.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: log level and output format for the diagnostics sink
//   - Gradient: estimator tolerances and parallelism
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	est := gradient.New(cfg.Gradient.EstimatorConfig(), logger)
package config
