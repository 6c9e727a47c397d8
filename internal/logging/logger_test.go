package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("configured")
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "noisy"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewDevelopment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Development = true
	cfg.Level = "debug"
	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("console encoder")
}

func TestNopIsSilent(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Warn("discarded")
}
