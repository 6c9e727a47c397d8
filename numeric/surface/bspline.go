package surface

// B-spline basis evaluation for tensor-product surfaces, following the
// standard knot-span / triangular recurrence formulation. Knot vectors use
// the clamped FITPACK layout: degree+1 repeated knots at each end.

// findSpan locates the knot span containing u, i.e. the index i with
// t[i] <= u < t[i+1], clamped so the rightmost domain point stays inside the
// last non-empty span. n is the number of basis functions.
func findSpan(t []float64, deg, n int, u float64) int {
	if u >= t[n] {
		return n - 1
	}
	if u <= t[deg] {
		return deg
	}
	lo, hi := deg, n
	mid := (lo + hi) / 2
	for u < t[mid] || u >= t[mid+1] {
		if u < t[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuncs fills out with the deg+1 basis functions that are non-zero on
// the given span, evaluated at u. out must have length deg+1.
func basisFuncs(t []float64, span, deg int, u float64, out []float64) {
	left := make([]float64, deg+1)
	right := make([]float64, deg+1)

	out[0] = 1.0
	for j := 1; j <= deg; j++ {
		left[j] = u - t[span+1-j]
		right[j] = t[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}
}
