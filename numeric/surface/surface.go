package surface

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidData reports malformed knot or coefficient state in a Fit.
	ErrInvalidData = errors.New("invalid surface data")
	// ErrEvaluation reports a query the underlying spline could not evaluate.
	ErrEvaluation = errors.New("surface evaluation failed")
)

// Fit is an already-fitted tensor-product B-spline surface: knot vectors,
// row-major coefficients, degrees, the fitted domain bounds, and the value
// substituted for queries outside that domain. Fits are produced by an
// external fitting routine and are read-only here, so concurrent evaluation
// needs no coordination.
type Fit struct {
	Tx, Ty     []float64
	Coeffs     []float64
	DegX, DegY int

	XMin, XMax float64
	YMin, YMax float64
	Fill       float64
}

// nx and ny are the basis-function counts along each axis.
func (f *Fit) nx() int { return len(f.Tx) - f.DegX - 1 }
func (f *Fit) ny() int { return len(f.Ty) - f.DegY - 1 }

// check validates the coefficient/knot state once per Evaluate call.
func (f *Fit) check() error {
	if f.DegX < 1 || f.DegY < 1 {
		return fmt.Errorf("%w: spline degrees (%d, %d) must be at least 1",
			ErrInvalidData, f.DegX, f.DegY)
	}
	if len(f.Tx) < 2*(f.DegX+1) || len(f.Ty) < 2*(f.DegY+1) {
		return fmt.Errorf("%w: knot vectors too short for degrees (%d, %d)",
			ErrInvalidData, f.DegX, f.DegY)
	}
	for i := 1; i < len(f.Tx); i++ {
		if f.Tx[i] < f.Tx[i-1] {
			return fmt.Errorf("%w: x knots are not non-decreasing", ErrInvalidData)
		}
	}
	for i := 1; i < len(f.Ty); i++ {
		if f.Ty[i] < f.Ty[i-1] {
			return fmt.Errorf("%w: y knots are not non-decreasing", ErrInvalidData)
		}
	}
	if err := checkKnotMultiplicity(f.Tx, f.DegX, "x"); err != nil {
		return err
	}
	if err := checkKnotMultiplicity(f.Ty, f.DegY, "y"); err != nil {
		return err
	}
	if len(f.Coeffs) != f.nx()*f.ny() {
		return fmt.Errorf("%w: %d coefficients for a %dx%d basis",
			ErrInvalidData, len(f.Coeffs), f.nx(), f.ny())
	}
	if !(f.XMin < f.XMax) || !(f.YMin < f.YMax) {
		return fmt.Errorf("%w: domain bounds are not ordered", ErrInvalidData)
	}
	return nil
}

// checkKnotMultiplicity bounds knot repetition: interior knots at most deg
// times, the domain endpoints at most deg+1. Anything beyond that produces a
// zero-width span whose basis recurrence would divide by zero.
func checkKnotMultiplicity(t []float64, deg int, axis string) error {
	n := len(t) - deg - 1
	for i := 0; i < len(t); {
		j := i
		for j < len(t) && t[j] == t[i] {
			j++
		}
		limit := deg
		if t[i] == t[deg] || t[i] == t[n] {
			limit = deg + 1
		}
		if j-i > limit {
			return fmt.Errorf("%w: %s knot %v repeated %d times, at most %d allowed",
				ErrInvalidData, axis, t[i], j-i, limit)
		}
		i = j
	}
	return nil
}

// evalBatch computes the surface at each paired (xs[k], ys[k]). The Fit has
// already been checked; per-point failures abort the batch.
func (f *Fit) evalBatch(xs, ys, out []float64) error {
	nx, ny := f.nx(), f.ny()
	bx := make([]float64, f.DegX+1)
	by := make([]float64, f.DegY+1)

	for k := range xs {
		x, y := xs[k], ys[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			return fmt.Errorf("%w: non-finite query point (%v, %v)", ErrEvaluation, x, y)
		}
		if x < f.Tx[f.DegX] || x > f.Tx[nx] || y < f.Ty[f.DegY] || y > f.Ty[ny] {
			return fmt.Errorf("%w: point (%v, %v) outside knot support", ErrEvaluation, x, y)
		}

		spanX := findSpan(f.Tx, f.DegX, nx, x)
		spanY := findSpan(f.Ty, f.DegY, ny, y)
		basisFuncs(f.Tx, spanX, f.DegX, x, bx)
		basisFuncs(f.Ty, spanY, f.DegY, y, by)

		var v float64
		for i := 0; i <= f.DegX; i++ {
			row := (spanX - f.DegX + i) * ny
			for j := 0; j <= f.DegY; j++ {
				v += f.Coeffs[row+spanY-f.DegY+j] * bx[i] * by[j]
			}
		}
		out[k] = v
	}
	return nil
}

// Evaluate computes the surface at element-wise paired query points. The two
// arguments are reconciled by broadcasting, so a scalar pairs with every
// element of an array and compatible shapes expand along size-1 dimensions;
// the result carries the broadcast shape (scalar in, scalar out). Points
// outside the fitted domain receive fit.Fill.
func Evaluate(fit *Fit, x, y Array) (Array, error) {
	if err := fit.check(); err != nil {
		return Array{}, err
	}
	shape, xs, ys, err := reconcile(x, y)
	if err != nil {
		return Array{}, err
	}

	out := make([]float64, len(xs))
	var inX, inY []float64
	var inPos []int
	for k := range xs {
		if xs[k] < fit.XMin || xs[k] > fit.XMax || ys[k] < fit.YMin || ys[k] > fit.YMax {
			out[k] = fit.Fill
			continue
		}
		inX = append(inX, xs[k])
		inY = append(inY, ys[k])
		inPos = append(inPos, k)
	}

	if len(inPos) > 0 {
		vals := make([]float64, len(inPos))
		if err := fit.evalBatch(inX, inY, vals); err != nil {
			return Array{}, err
		}
		for i, k := range inPos {
			out[k] = vals[i]
		}
	}
	return Array{Data: out, Shape: shape}, nil
}

// EvalScalar evaluates the surface at a single point.
func EvalScalar(fit *Fit, x, y float64) (float64, error) {
	out, err := Evaluate(fit, Scalar(x), Scalar(y))
	if err != nil {
		return 0, err
	}
	return out.Data[0], nil
}
