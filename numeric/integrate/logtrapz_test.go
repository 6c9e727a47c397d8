package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTrapzConstant(t *testing.T) {
	// constant 1 over width 2 integrates to 2
	got, err := LogTrapz([]float64{0, 0, 0}, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2.0), got, 1e-12)
}

func TestLogTrapzMatchesLinearDomain(t *testing.T) {
	// compare against the plain trapezoidal rule on exp(lnf) where exp is safe
	xs := []float64{0, 0.5, 1.0, 1.5, 2.0}
	lnf := make([]float64, len(xs))
	for i, x := range xs {
		lnf[i] = math.Log(1.0 + x*x)
	}
	var want float64
	for i := 0; i < len(xs)-1; i++ {
		want += 0.5 * 0.5 * (math.Exp(lnf[i]) + math.Exp(lnf[i+1]))
	}

	got, err := LogTrapz(lnf, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(want), got, 1e-12)
}

func TestLogTrapzExtremeMagnitudes(t *testing.T) {
	t.Run("overflow range", func(t *testing.T) {
		// exp(1000) overflows float64; the log-domain result is exact
		got, err := LogTrapz([]float64{1000, 1000}, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, got, 1e-9)
	})

	t.Run("underflow range", func(t *testing.T) {
		got, err := LogTrapz([]float64{-1000, -1000}, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, -1000.0, got, 1e-9)
		assert.False(t, math.IsInf(got, -1))
	})
}

func TestLogTrapzNonUniform(t *testing.T) {
	t.Run("matches uniform on equal spacing", func(t *testing.T) {
		lnf := []float64{-1.0, 0.3, 0.1, -2.5}
		uniform, err := LogTrapz(lnf, 0.25)
		require.NoError(t, err)
		nonuniform, err := LogTrapzNonUniform(lnf, []float64{0.25, 0.25, 0.25})
		require.NoError(t, err)
		assert.InDelta(t, uniform, nonuniform, 1e-12)
	})

	t.Run("irregular grid", func(t *testing.T) {
		// constant 1 over total width 0.6
		got, err := LogTrapzNonUniform([]float64{0, 0, 0}, []float64{0.1, 0.5})
		require.NoError(t, err)
		assert.InDelta(t, math.Log(0.6), got, 1e-12)
	})
}

func TestLogTrapzValidation(t *testing.T) {
	_, err := LogTrapz([]float64{0}, 1.0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = LogTrapzNonUniform([]float64{0, 0, 0}, []float64{1.0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = LogTrapzNonUniform([]float64{0, 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLogTrapzIdempotent(t *testing.T) {
	lnf := []float64{-3.2, 1.4, 0.9, -0.1}
	a, err := LogTrapz(lnf, 0.7)
	require.NoError(t, err)
	b, err := LogTrapz(lnf, 0.7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
