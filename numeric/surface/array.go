package surface

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports query arrays whose shapes cannot be broadcast
// against each other.
var ErrShapeMismatch = errors.New("shape mismatch")

// Array is a minimal shaped view over a flat float64 slice, row-major. A nil
// or empty Shape denotes a scalar holding exactly one value.
type Array struct {
	Data  []float64
	Shape []int
}

// Scalar wraps a single value as a rank-0 Array.
func Scalar(v float64) Array {
	return Array{Data: []float64{v}}
}

// FromSlice wraps a slice as a rank-1 Array without copying.
func FromSlice(data []float64) Array {
	return Array{Data: data, Shape: []int{len(data)}}
}

// New builds an Array from flat row-major data and an explicit shape.
func New(data []float64, shape ...int) Array {
	return Array{Data: data, Shape: shape}
}

// Size returns the number of elements implied by the shape.
func (a Array) Size() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// Rank returns the number of dimensions; scalars have rank 0.
func (a Array) Rank() int { return len(a.Shape) }

// IsScalar reports whether the array is rank 0.
func (a Array) IsScalar() bool { return len(a.Shape) == 0 }

// validate rejects arrays whose data length does not match their shape.
func (a Array) validate(name string) error {
	for _, d := range a.Shape {
		if d <= 0 {
			return fmt.Errorf("%w: %s has non-positive dimension in shape %v",
				ErrShapeMismatch, name, a.Shape)
		}
	}
	if len(a.Data) != a.Size() {
		return fmt.Errorf("%w: %s has %d values for shape %v",
			ErrShapeMismatch, name, len(a.Data), a.Shape)
	}
	return nil
}

// reconcile broadcasts x against y and returns the common shape together with
// flat, element-wise paired coordinate slices. Single-element arrays collapse
// to scalars first; a lower-rank operand is right-padded with size-1
// dimensions; remaining incompatibilities name the original shapes.
func reconcile(x, y Array) (shape []int, xs, ys []float64, err error) {
	if err := x.validate("x"); err != nil {
		return nil, nil, nil, err
	}
	if err := y.validate("y"); err != nil {
		return nil, nil, nil, err
	}

	origX, origY := x.Shape, y.Shape
	if x.Size() == 1 {
		x = Scalar(x.Data[0])
	}
	if y.Size() == 1 {
		y = Scalar(y.Data[0])
	}

	if x.IsScalar() && y.IsScalar() {
		return nil, x.Data, y.Data, nil
	}

	// a scalar broadcasts to the other operand's shape; two arrays get their
	// ranks aligned by appending size-1 dimensions to the shorter one
	xShape := append([]int(nil), x.Shape...)
	yShape := append([]int(nil), y.Shape...)
	for len(xShape) < len(yShape) {
		xShape = append(xShape, 1)
	}
	for len(yShape) < len(xShape) {
		yShape = append(yShape, 1)
	}

	shape = make([]int, len(xShape))
	for i := range shape {
		switch {
		case xShape[i] == yShape[i]:
			shape[i] = xShape[i]
		case xShape[i] == 1:
			shape[i] = yShape[i]
		case yShape[i] == 1:
			shape[i] = xShape[i]
		default:
			return nil, nil, nil, fmt.Errorf(
				"%w: received incompatibly shaped arrays %v and %v",
				ErrShapeMismatch, origX, origY)
		}
	}

	xs = expand(x.Data, xShape, shape)
	ys = expand(y.Data, yShape, shape)
	return shape, xs, ys, nil
}

// expand materializes data of shape src broadcast to dst, flattened row-major.
// Size-1 source dimensions advance with stride zero.
func expand(data []float64, src, dst []int) []float64 {
	total := 1
	for _, d := range dst {
		total *= d
	}

	strides := make([]int, len(src))
	s := 1
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] == 1 {
			strides[i] = 0
		} else {
			strides[i] = s
		}
		s *= src[i]
	}

	out := make([]float64, total)
	idx := make([]int, len(dst))
	for k := 0; k < total; k++ {
		off := 0
		for i, j := range idx {
			off += j * strides[i]
		}
		out[k] = data[off]
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < dst[i] {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
