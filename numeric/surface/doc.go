// Package surface evaluates precomputed bivariate spline surfaces.
//
// A Fit holds the knots, coefficients, and degrees of a tensor-product
// B-spline produced by an external fitting routine, together with the fitted
// domain bounds and a fill value. The evaluator never fits anything; it only
// reads the Fit.
//
// Queries are element-wise: Evaluate pairs its x and y arguments point by
// point after reconciling their shapes with size-1-dimension broadcasting,
// rather than forming the outer-product grid a naive two-array spline call
// would produce. Points outside the fitted domain receive the fill value
// without touching the spline.
//
// Example Usage:
//
//	out, err := surface.Evaluate(fit, surface.FromSlice(times), surface.Scalar(freq))
//	v, err := surface.EvalScalar(fit, 0.5, 1.2)
package surface
