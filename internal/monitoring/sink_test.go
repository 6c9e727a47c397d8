package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCounterCoreCountsWarnings(t *testing.T) {
	m := NewMetrics(nil)
	logger := zap.New(CounterCore(m.GradientNonConverged))

	logger.Info("below threshold")
	logger.Debug("below threshold")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GradientNonConverged))

	logger.Warn("counted")
	logger.Warn("counted")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GradientNonConverged))
}

func TestCounterCoreIndependentOfHostLevel(t *testing.T) {
	m := NewMetrics(nil)
	// a nop host core rejects everything; teed with the counting core the
	// warning is still counted
	logger := zap.New(zapcore.NewTee(zap.NewNop().Core(), CounterCore(m.GradientNonConverged)))

	logger.Warn("host drops this, the counter must not")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GradientNonConverged))
}
