package numeric

import (
	"github.com/GriffinCanCode/bayescore/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts an array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, false
		}
	}
	return numbers, true
}

// GetInts extracts an array of integer indices
func GetInts(params map[string]interface{}, key string) ([]int, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	ints := make([]int, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case int:
			ints = append(ints, num)
		case int64:
			ints = append(ints, int(num))
		case float64:
			if num != float64(int(num)) {
				return nil, false
			}
			ints = append(ints, int(num))
		default:
			return nil, false
		}
	}
	return ints, true
}

// GetString extracts a string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
