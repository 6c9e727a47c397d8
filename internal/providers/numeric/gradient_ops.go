package numeric

import (
	"context"

	"github.com/GriffinCanCode/bayescore/internal/types"
	"github.com/GriffinCanCode/bayescore/numeric/gradient"
)

func (p *Provider) gradientTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.gradient",
			Name:        "Gradient",
			Description: "Converged central-difference gradient of a registered objective",
			Parameters: []types.Parameter{
				{Name: "objective", Type: "string", Description: "Registered objective name", Required: true},
				{Name: "values", Type: "array", Description: "Parameter vector", Required: true},
				{Name: "releps", Type: "number|array", Description: "Relative step size(s), default 1e-3", Required: false},
				{Name: "abseps", Type: "number|array", Description: "Absolute step size(s), overrides releps", Required: false},
				{Name: "nonfixed", Type: "array", Description: "Indices to differentiate, default all", Required: false},
			},
			Returns: "array",
		},
	}
}

// Gradient estimates partial derivatives of a registered objective
func (p *Provider) Gradient(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := GetString(params, "objective")
	if !ok {
		return Failure("objective parameter required")
	}
	fn, ok := p.objective(name)
	if !ok {
		return Failure("no objective registered under " + name)
	}

	vals, ok := GetNumbers(params, "values")
	if !ok {
		return Failure("values parameter required")
	}

	step, errMsg := stepFromParams(params)
	if errMsg != "" {
		return Failure(errMsg)
	}

	var nonfixed []int
	if _, present := params["nonfixed"]; present {
		nonfixed, ok = GetInts(params, "nonfixed")
		if !ok {
			return Failure("nonfixed must be an array of indices")
		}
	}

	grads, err := p.estimator.Estimate(vals, fn, step, nonfixed)
	if err != nil {
		return Failure(err.Error())
	}
	p.metrics.GradientComponents.Add(float64(len(grads)))

	out := make([]interface{}, len(grads))
	for i, g := range grads {
		out[i] = g
	}
	return Success(map[string]interface{}{"gradient": out})
}

// stepFromParams resolves the step spec: abseps overrides releps, each either
// scalar or per-parameter; absent both, the default relative step applies.
func stepFromParams(params map[string]interface{}) (gradient.Step, string) {
	if _, present := params["abseps"]; present {
		if abs, ok := GetNumber(params, "abseps"); ok {
			return gradient.Absolute(abs), ""
		}
		if arr, ok := GetNumbers(params, "abseps"); ok {
			return gradient.AbsolutePerParam(arr), ""
		}
		return gradient.Step{}, "abseps must be a number or an array of numbers"
	}
	if _, present := params["releps"]; present {
		if rel, ok := GetNumber(params, "releps"); ok {
			return gradient.Relative(rel), ""
		}
		if arr, ok := GetNumbers(params, "releps"); ok {
			return gradient.RelativePerParam(arr), ""
		}
		return gradient.Step{}, "releps must be a number or an array of numbers"
	}
	return gradient.Relative(1e-3), ""
}
