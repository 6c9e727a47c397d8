package gradient

import (
	"fmt"
	"math"
)

type stepKind int

const (
	stepUnset stepKind = iota
	stepRelative
	stepAbsolute
)

// Step specifies the initial finite-difference step, either relative to each
// parameter's magnitude or absolute, with a single scalar or one value per
// parameter. The zero Step is invalid and rejected at validation time.
type Step struct {
	kind     stepKind
	scalar   float64
	perParam []float64
}

// Relative returns a step that is a uniform fraction of each parameter's magnitude.
func Relative(frac float64) Step {
	return Step{kind: stepRelative, scalar: frac}
}

// RelativePerParam returns a step with one relative fraction per parameter.
func RelativePerParam(fracs []float64) Step {
	return Step{kind: stepRelative, perParam: fracs}
}

// Absolute returns a uniform absolute step.
func Absolute(size float64) Step {
	return Step{kind: stepAbsolute, scalar: size}
}

// AbsolutePerParam returns a step with one absolute size per parameter.
func AbsolutePerParam(sizes []float64) Step {
	return Step{kind: stepAbsolute, perParam: sizes}
}

// init resolves the step spec against the parameter vector. eps holds the
// absolute half-step per parameter; teps holds the scale factor tracked by the
// convergence threshold, which for relative steps stays the relative fraction.
func (s Step) init(vals []float64) (eps, teps []float64, err error) {
	n := len(vals)
	if s.perParam != nil && len(s.perParam) != n {
		return nil, nil, fmt.Errorf("%w: step sizes have length %d, want %d",
			ErrInvalidArgument, len(s.perParam), n)
	}

	eps = make([]float64, n)
	teps = make([]float64, n)

	switch s.kind {
	case stepRelative:
		for i, v := range vals {
			rel := s.scalar
			if s.perParam != nil {
				rel = s.perParam[i]
			}
			eps[i] = math.Abs(v) * rel
			if eps[i] == 0 {
				// zero-magnitude parameter: use the relative fraction directly
				eps[i] = rel
			}
			teps[i] = rel
		}
	case stepAbsolute:
		for i := range vals {
			abs := s.scalar
			if s.perParam != nil {
				abs = s.perParam[i]
			}
			eps[i] = abs
			teps[i] = abs
		}
	default:
		return nil, nil, fmt.Errorf("%w: step specification is empty", ErrInvalidArgument)
	}
	return eps, teps, nil
}
