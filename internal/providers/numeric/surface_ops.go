package numeric

import (
	"context"

	"github.com/GriffinCanCode/bayescore/internal/types"
	"github.com/GriffinCanCode/bayescore/numeric/numutil"
	"github.com/GriffinCanCode/bayescore/numeric/surface"
)

func (p *Provider) surfaceTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.surface.eval",
			Name:        "Surface Evaluation",
			Description: "Evaluate a registered spline surface at broadcast query points",
			Parameters: []types.Parameter{
				{Name: "surface", Type: "string", Description: "Registered surface name", Required: true},
				{Name: "x", Type: "number|array", Description: "First coordinate(s)", Required: true},
				{Name: "y", Type: "number|array", Description: "Second coordinate(s)", Required: true},
				{Name: "x_shape", Type: "array", Description: "Shape of x, default flat", Required: false},
				{Name: "y_shape", Type: "array", Description: "Shape of y, default flat", Required: false},
			},
			Returns: "number|array",
		},
	}
}

func (p *Provider) utilityTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.roundpow2",
			Name:        "Round Up To Power Of Two",
			Description: "Round a positive value up to the next power of two",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
	}
}

// SurfaceEval evaluates a registered surface at element-wise paired points
func (p *Provider) SurfaceEval(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := GetString(params, "surface")
	if !ok {
		return Failure("surface parameter required")
	}
	fit, ok := p.surfaceFit(name)
	if !ok {
		return Failure("no surface registered under " + name)
	}

	x, errMsg := arrayFromParams(params, "x", "x_shape")
	if errMsg != "" {
		return Failure(errMsg)
	}
	y, errMsg := arrayFromParams(params, "y", "y_shape")
	if errMsg != "" {
		return Failure(errMsg)
	}

	out, err := surface.Evaluate(fit, x, y)
	if err != nil {
		return Failure(err.Error())
	}

	if out.IsScalar() {
		return Success(map[string]interface{}{"result": out.Data[0]})
	}
	vals := make([]interface{}, len(out.Data))
	for i, v := range out.Data {
		vals[i] = v
	}
	shape := make([]interface{}, len(out.Shape))
	for i, d := range out.Shape {
		shape[i] = d
	}
	return Success(map[string]interface{}{"result": vals, "shape": shape})
}

// RoundPow2 rounds a value up to the next power of two
func (p *Provider) RoundPow2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	result, err := numutil.RoundUpPow2(x)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": result})
}

// arrayFromParams builds a surface query operand: a bare number is a scalar,
// an array is rank-1 unless an explicit shape accompanies it.
func arrayFromParams(params map[string]interface{}, key, shapeKey string) (surface.Array, string) {
	if v, ok := GetNumber(params, key); ok {
		return surface.Scalar(v), ""
	}
	data, ok := GetNumbers(params, key)
	if !ok {
		return surface.Array{}, key + " must be a number or an array of numbers"
	}
	if _, present := params[shapeKey]; present {
		dims, ok := GetInts(params, shapeKey)
		if !ok {
			return surface.Array{}, shapeKey + " must be an array of dimensions"
		}
		return surface.New(data, dims...), ""
	}
	return surface.FromSlice(data), ""
}
