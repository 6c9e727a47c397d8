package gradient

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
)

// ErrInvalidArgument reports inputs rejected before any function evaluation.
var ErrInvalidArgument = errors.New("invalid argument")

// Func is a scalar objective of a parameter vector, e.g. a log-likelihood.
// It must tolerate repeated calls with perturbed copies of the vector and
// should be deterministic for convergence detection to be meaningful.
type Func func(vals []float64) float64

// maximum number of times a component's estimate may change sign before the
// refinement is abandoned
const maxFlipFlops = 10

// Config defines estimator tuning parameters.
type Config struct {
	// MinRelStep is the smallest relative step scale; refinement below it
	// counts as non-convergence.
	MinRelStep float64
	// RelTol is the relative agreement required between successive estimates.
	RelTol float64
	// StepScale is the factor applied to the step on each refinement.
	StepScale float64
	// Parallel runs the per-parameter convergence loops concurrently. The
	// loops share no state, so this only requires Func to be goroutine-safe.
	Parallel bool
}

// DefaultConfig returns the estimator defaults used across the inference code.
func DefaultConfig() Config {
	return Config{
		MinRelStep: 1e-9,
		RelTol:     1e-3,
		StepScale:  0.5,
	}
}

// Estimator computes converged central-difference partial derivatives.
type Estimator struct {
	cfg Config
	log *zap.Logger
}

// New creates an estimator. A nil logger disables diagnostics.
func New(cfg Config, log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{cfg: cfg, log: log}
}

// Estimate computes partial derivatives of fn at vals for the indices in
// nonfixed, in that order. A nil nonfixed requests every index. Validation
// failures return ErrInvalidArgument before fn is called; components that fail
// to converge degrade to a zero derivative and log a warning.
func (e *Estimator) Estimate(vals []float64, fn Func, step Step, nonfixed []int) ([]float64, error) {
	n := len(vals)
	if nonfixed == nil {
		nonfixed = make([]int, n)
		for i := range nonfixed {
			nonfixed[i] = i
		}
	}
	if len(nonfixed) > n {
		return nil, fmt.Errorf("%w: %d non-fixed indices for %d parameters",
			ErrInvalidArgument, len(nonfixed), n)
	}
	seen := make(map[int]struct{}, len(nonfixed))
	for _, idx := range nonfixed {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: non-fixed index %d out of range [0, %d)",
				ErrInvalidArgument, idx, n)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate non-fixed index %d", ErrInvalidArgument, idx)
		}
		seen[idx] = struct{}{}
	}

	eps, teps, err := step.init(vals)
	if err != nil {
		return nil, err
	}

	grads := make([]float64, len(nonfixed))
	if e.cfg.Parallel {
		var wg sync.WaitGroup
		for k, idx := range nonfixed {
			wg.Add(1)
			go func(k, idx int) {
				defer wg.Done()
				grads[k] = e.converge(vals, fn, idx, eps[idx], teps[idx])
			}(k, idx)
		}
		wg.Wait()
	} else {
		for k, idx := range nonfixed {
			grads[k] = e.converge(vals, fn, idx, eps[idx], teps[idx])
		}
	}
	return grads, nil
}

// converge refines the central difference for one coordinate until two
// successive estimates agree within RelTol, the step scale underflows
// MinRelStep, or the estimate flip-flops in sign too many times.
func (e *Estimator) converge(vals []float64, fn Func, idx int, leps, cureps float64) float64 {
	fvals := make([]float64, len(vals))
	bvals := make([]float64, len(vals))
	copy(fvals, vals)
	copy(bvals, vals)

	cdiff := centralDiff(fn, fvals, bvals, idx, leps)

	flipflop := 0
	for {
		cureps *= e.cfg.StepScale
		if cureps < e.cfg.MinRelStep || flipflop > maxFlipFlops {
			e.log.Warn("derivative did not converge, setting flat derivative",
				zap.Int("index", idx),
				zap.Int("flipflops", flipflop),
				zap.Float64("step_scale", cureps),
			)
			return 0.0
		}
		leps *= e.cfg.StepScale

		cdiffnew := centralDiff(fn, fvals, bvals, idx, leps)
		if cdiffnew == cdiff {
			// exact fixed point, e.g. a linear objective
			return cdiffnew
		}

		rat := cdiff / cdiffnew
		if !math.IsNaN(rat) && !math.IsInf(rat, 0) && rat > 0 {
			if math.Abs(1-rat) < e.cfg.RelTol {
				return cdiffnew
			}
			cdiff = cdiffnew
			continue
		}
		// sign change or degenerate ratio
		cdiff = cdiffnew
		flipflop++
	}
}

// centralDiff evaluates (fn(x + h/2 e_idx) - fn(x - h/2 e_idx)) / h, restoring
// the scratch vectors before returning.
func centralDiff(fn Func, fvals, bvals []float64, idx int, h float64) float64 {
	fvals[idx] += 0.5 * h
	bvals[idx] -= 0.5 * h
	d := (fn(fvals) - fn(bvals)) / h
	fvals[idx] -= 0.5 * h
	bvals[idx] += 0.5 * h
	return d
}
