package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 1e-9, cfg.Gradient.MinRelStep)
	assert.Equal(t, 1e-3, cfg.Gradient.RelTol)
	assert.Equal(t, 0.5, cfg.Gradient.StepScale)
	assert.False(t, cfg.Gradient.Parallel)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 0.5, cfg.Gradient.StepScale)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRAD_REL_TOL", "1e-4")
	t.Setenv("GRAD_PARALLEL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 1e-4, cfg.Gradient.RelTol)
	assert.True(t, cfg.Gradient.Parallel)
}

func TestEstimatorConfig(t *testing.T) {
	got := Default().Gradient.EstimatorConfig()
	assert.Equal(t, 1e-9, got.MinRelStep)
	assert.Equal(t, 1e-3, got.RelTol)
	assert.Equal(t, 0.5, got.StepScale)
}
