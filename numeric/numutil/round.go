// Package numutil holds small numeric helpers shared by the inference code.
package numutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument reports inputs outside a helper's domain.
var ErrInvalidArgument = errors.New("invalid argument")

// RoundUpPow2 rounds x up to the nearest power of two; exact powers of two
// are returned unchanged.
func RoundUpPow2(x float64) (float64, error) {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 1) {
		return 0, fmt.Errorf("%w: cannot round %v to a power of two", ErrInvalidArgument, x)
	}
	return math.Pow(2, math.Ceil(math.Log2(x))), nil
}
