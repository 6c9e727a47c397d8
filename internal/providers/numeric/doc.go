// Package numeric exposes the numerical primitives to the host registry
// through the tool-based provider interface.
//
// Tools:
//   - numeric.gradient: converged central-difference gradient of a registered objective
//   - numeric.logtrapz: log-domain trapezoidal integration
//   - numeric.surface.eval: broadcast evaluation of a registered spline surface
//   - numeric.roundpow2: round up to the next power of two
//
// Objective functions and fitted surfaces cannot cross a params map, so the
// host process registers them by name before executing the corresponding
// tools:
//
//	p := numeric.NewProvider(cfg, logger, metrics)
//	p.RegisterObjective("gaussian_loglike", loglike)
//	result, err := p.Execute(ctx, "numeric.gradient", params, appCtx)
package numeric
