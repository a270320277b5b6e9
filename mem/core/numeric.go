package core

import "math"

const defaultEpsilon = 1e-12

// Number is the element capability set a Buffer needs: addition,
// multiplication by an element-typed scalar, and a zero value.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Sqrt returns the square root of v converted to float64. Integer inputs are
// converted first; negative values yield NaN.
func Sqrt[T Number](v T) float64 {
	return math.Sqrt(float64(v))
}
