// Package integrate provides log-domain numerical integration.
//
// The integrators accept the natural logarithm of sampled function values and
// return the natural logarithm of the trapezoidal-rule integral without ever
// leaving log space. Summation uses gonum's max-shifted log-sum-exp, so inputs
// near +-700 that would overflow or underflow exp() are handled exactly as
// well as moderate ones.
package integrate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports malformed sample or spacing inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// LogTrapz returns the log of the trapezoidal integral of exp(lnf) sampled on
// a uniform grid with spacing dx.
func LogTrapz(lnf []float64, dx float64) (float64, error) {
	if len(lnf) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidArgument, len(lnf))
	}
	lo := floats.LogSumExp(lnf[:len(lnf)-1])
	hi := floats.LogSumExp(lnf[1:])
	return math.Log(dx/2) + floats.LogSumExp([]float64{lo, hi}), nil
}

// LogTrapzNonUniform returns the log of the trapezoidal integral of exp(lnf)
// with one spacing per adjacent sample pair; dx must have length len(lnf)-1.
func LogTrapzNonUniform(lnf []float64, dx []float64) (float64, error) {
	if len(lnf) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidArgument, len(lnf))
	}
	if len(dx) != len(lnf)-1 {
		return 0, fmt.Errorf("%w: spacing has length %d, want %d",
			ErrInvalidArgument, len(dx), len(lnf)-1)
	}

	// fold the interval widths into the samples so each trapezoid is already
	// weighted before summation
	lo := make([]float64, len(dx))
	hi := make([]float64, len(dx))
	for i, d := range dx {
		lndx := math.Log(d)
		lo[i] = lnf[i] + lndx
		hi[i] = lnf[i+1] + lndx
	}
	sum := floats.LogSumExp([]float64{floats.LogSumExp(lo), floats.LogSumExp(hi)})
	return sum - math.Ln2, nil
}
