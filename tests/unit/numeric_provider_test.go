package unit

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/bayescore/internal/config"
	"github.com/GriffinCanCode/bayescore/internal/monitoring"
	"github.com/GriffinCanCode/bayescore/internal/providers/numeric"
	"github.com/GriffinCanCode/bayescore/internal/service"
	"github.com/GriffinCanCode/bayescore/internal/types"
	"github.com/GriffinCanCode/bayescore/numeric/surface"
	helpers "github.com/GriffinCanCode/bayescore/tests/helpers/testutil"
)

func newProvider() *numeric.Provider {
	p := numeric.NewProvider(config.Default(), nil, nil)
	p.RegisterObjective("plane", func(v []float64) float64 {
		return 2.0*v[0] - 3.0*v[1]
	})
	p.RegisterSurface("calibration", &surface.Fit{
		Tx:     []float64{0, 0, 1, 2, 2},
		Ty:     []float64{0, 0, 1, 2, 2},
		DegX:   1,
		DegY:   1,
		Coeffs: []float64{0, 1, 2, 1, 2, 3, 2, 3, 4},
		XMin:   0, XMax: 2,
		YMin: 0, YMax: 2,
		Fill: -1,
	})
	return p
}

func TestNumericProvider(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := p.Definition()
		assert.Equal(t, "numeric", def.ID)
		assert.Equal(t, types.CategoryNumeric, def.Category)

		ids := make(map[string]bool)
		for _, tool := range def.Tools {
			ids[tool.ID] = true
		}
		for _, want := range []string{
			"numeric.gradient", "numeric.logtrapz", "numeric.surface.eval", "numeric.roundpow2",
		} {
			assert.True(t, ids[want], "missing tool %s", want)
		}
	})

	t.Run("Gradient", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.gradient", map[string]interface{}{
			"objective": "plane",
			"values":    helpers.Numbers(1.0, 1.0),
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)

		grads := result.Data["gradient"].([]interface{})
		require.Len(t, grads, 2)
		assert.InEpsilon(t, 2.0, grads[0].(float64), 1e-3)
		assert.InEpsilon(t, -3.0, grads[1].(float64), 1e-3)
	})

	t.Run("Gradient with subset and absolute step", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.gradient", map[string]interface{}{
			"objective": "plane",
			"values":    helpers.Numbers(1.0, 1.0),
			"abseps":    0.1,
			"nonfixed":  helpers.Ints(1),
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)

		grads := result.Data["gradient"].([]interface{})
		require.Len(t, grads, 1)
		assert.InEpsilon(t, -3.0, grads[0].(float64), 1e-3)
	})

	t.Run("Gradient unknown objective", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.gradient", map[string]interface{}{
			"objective": "missing",
			"values":    helpers.Numbers(1.0),
		}, nil)
		require.NoError(t, err)
		helpers.AssertError(t, result)
	})

	t.Run("Gradient invalid indices", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.gradient", map[string]interface{}{
			"objective": "plane",
			"values":    helpers.Numbers(1.0, 1.0),
			"nonfixed":  helpers.Ints(0, 5),
		}, nil)
		require.NoError(t, err)
		helpers.AssertError(t, result)
	})

	t.Run("LogTrapz uniform", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.logtrapz", map[string]interface{}{
			"log_values": helpers.Numbers(0, 0, 0),
			"dx":         1.0,
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)
		assert.InDelta(t, math.Log(2.0), result.Data["result"].(float64), 1e-12)
	})

	t.Run("LogTrapz non-uniform", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.logtrapz", map[string]interface{}{
			"log_values": helpers.Numbers(0, 0, 0),
			"dx":         helpers.Numbers(0.1, 0.5),
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)
		assert.InDelta(t, math.Log(0.6), result.Data["result"].(float64), 1e-12)
	})

	t.Run("LogTrapz bad spacing length", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.logtrapz", map[string]interface{}{
			"log_values": helpers.Numbers(0, 0, 0),
			"dx":         helpers.Numbers(0.1),
		}, nil)
		require.NoError(t, err)
		helpers.AssertError(t, result)
	})

	t.Run("Surface scalar", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.surface.eval", map[string]interface{}{
			"surface": "calibration",
			"x":       0.5,
			"y":       0.5,
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)
		assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-12)
	})

	t.Run("Surface scalar against array", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.surface.eval", map[string]interface{}{
			"surface": "calibration",
			"x":       1.0,
			"y":       helpers.Numbers(0, 0.5, 1, 1.5, 2),
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)

		vals := result.Data["result"].([]interface{})
		require.Len(t, vals, 5)
		for i, y := range []float64{0, 0.5, 1, 1.5, 2} {
			assert.InDelta(t, 1.0+y, vals[i].(float64), 1e-12)
		}
	})

	t.Run("Surface fill outside domain", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.surface.eval", map[string]interface{}{
			"surface": "calibration",
			"x":       3.0,
			"y":       1.0,
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)
		assert.Equal(t, -1.0, result.Data["result"].(float64))
	})

	t.Run("Surface shape mismatch", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.surface.eval", map[string]interface{}{
			"surface": "calibration",
			"x":       helpers.Numbers(0, 1, 2),
			"y":       helpers.Numbers(0, 1, 2, 2),
		}, nil)
		require.NoError(t, err)
		helpers.AssertError(t, result)
	})

	t.Run("RoundPow2", func(t *testing.T) {
		result, err := p.Execute(ctx, "numeric.roundpow2", map[string]interface{}{
			"x": 5.0,
		}, nil)
		require.NoError(t, err)
		helpers.AssertSuccess(t, result)
		assert.Equal(t, 8.0, result.Data["result"].(float64))
	})

	t.Run("Unknown tool", func(t *testing.T) {
		_, err := p.Execute(ctx, "numeric.unknown", nil, nil)
		require.Error(t, err)
	})
}

func TestNumericProviderThroughRegistry(t *testing.T) {
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(newProvider()))

	result, err := registry.Execute(context.Background(), "numeric.roundpow2", map[string]interface{}{
		"x": 3.0,
	}, nil)
	require.NoError(t, err)
	helpers.AssertSuccess(t, result)
	assert.Equal(t, 4.0, result.Data["result"].(float64))
}

func TestNumericProviderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	// nil logger: the silent default must still feed the counters
	p := numeric.NewProvider(config.Default(), nil, metrics)
	p.RegisterObjective("plane", func(v []float64) float64 { return v[0] })

	_, err := p.Execute(context.Background(), "numeric.gradient", map[string]interface{}{
		"objective": "plane",
		"values":    helpers.Numbers(1.0, 2.0, 3.0),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.GradientComponents))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.GradientNonConverged))

	// cube root at the origin never satisfies the ratio test, so the lone
	// component degrades to a flat derivative and the counter moves
	p.RegisterObjective("cbrt", func(v []float64) float64 { return math.Cbrt(v[0]) })
	result, err := p.Execute(context.Background(), "numeric.gradient", map[string]interface{}{
		"objective": "cbrt",
		"values":    helpers.Numbers(0.0),
	}, nil)
	require.NoError(t, err)
	helpers.AssertSuccess(t, result)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.GradientNonConverged))
}
