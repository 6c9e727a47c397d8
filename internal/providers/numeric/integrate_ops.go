package numeric

import (
	"context"

	"github.com/GriffinCanCode/bayescore/internal/types"
	"github.com/GriffinCanCode/bayescore/numeric/integrate"
)

func (p *Provider) integrateTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.logtrapz",
			Name:        "Log Trapezoid",
			Description: "Log of the trapezoidal integral of log-domain samples",
			Parameters: []types.Parameter{
				{Name: "log_values", Type: "array", Description: "Natural log of the sampled function", Required: true},
				{Name: "dx", Type: "number|array", Description: "Uniform spacing, or one spacing per interval", Required: true},
			},
			Returns: "number",
		},
	}
}

// LogTrapz integrates log-domain samples by the trapezoidal rule
func (p *Provider) LogTrapz(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lnf, ok := GetNumbers(params, "log_values")
	if !ok {
		return Failure("log_values parameter required")
	}

	var result float64
	var err error
	if dx, ok := GetNumber(params, "dx"); ok {
		result, err = integrate.LogTrapz(lnf, dx)
	} else if dxs, ok := GetNumbers(params, "dx"); ok {
		result, err = integrate.LogTrapzNonUniform(lnf, dxs)
	} else {
		return Failure("dx must be a number or an array of numbers")
	}
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}
