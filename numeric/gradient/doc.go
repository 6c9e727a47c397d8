// Package gradient estimates partial derivatives by adaptive central differences.
//
// The estimator perturbs one coordinate at a time and halves the step until two
// successive central-difference estimates agree within a relative tolerance. It
// handles both relative and absolute step specifications, scalar or
// per-parameter:
//   - Relative(1e-3): initial step is 1e-3 of each parameter's magnitude
//   - Absolute(0.1): initial step is 0.1 for every parameter
//   - RelativePerParam / AbsolutePerParam: one step per coordinate
//
// Convergence failure is deliberately fail-soft: if the step underflows the
// minimum relative step, or the estimate changes sign more than ten times, the
// component degrades to a zero derivative and a warning is emitted through the
// injected logger. The call itself still succeeds. Callers that need a hard
// failure should inspect the log sink; this mirrors long-standing behavior in
// the inference code built on top of this package.
//
// Example Usage:
//
//	est := gradient.New(gradient.DefaultConfig(), logger)
//	grads, err := est.Estimate(vals, logLikelihood, gradient.Relative(1e-3), nil)
package gradient
