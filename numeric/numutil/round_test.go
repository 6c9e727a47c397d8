package numutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUpPow2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1, 1},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{0.3, 0.5},
	}
	for _, tc := range cases {
		got, err := RoundUpPow2(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestRoundUpPow2Invalid(t *testing.T) {
	for _, in := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, err := RoundUpPow2(in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}
