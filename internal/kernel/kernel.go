package kernel

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-linmem/mem/core"
)

// blockSize bounds the stack scratch used by the fused float64 paths.
const blockSize = 256

// Fill sets every element of dst to v.
func Fill[T core.Number](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Scale multiplies every element of dst by a: dst[i] *= a.
func Scale[T core.Number](dst []T, a T) {
	if f, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlockInPlace(f, float64(a))
		return
	}
	for i := range dst {
		dst[i] *= a
	}
}

// Divide divides every element of dst by a: dst[i] /= a.
// Integer element types panic on a zero divisor.
func Divide[T core.Number](dst []T, a T) {
	for i := range dst {
		dst[i] /= a
	}
}

// AxPlusY accumulates y[i] += a * x[i]. x and y may alias.
func AxPlusY[T core.Number](y, x []T, a T) {
	if fy, ok := any(y).([]float64); ok {
		axpy64(fy, any(x).([]float64), float64(a))
		return
	}
	for i := range y {
		y[i] += a * x[i]
	}
}

// AxPlusBy assigns dst[i] = a*x[i] + b*y[i]. dst may alias x or y.
func AxPlusBy[T core.Number](dst, x, y []T, a, b T) {
	if fd, ok := any(dst).([]float64); ok {
		axpby64(fd, any(x).([]float64), any(y).([]float64), float64(a), float64(b))
		return
	}
	for i := range dst {
		dst[i] = a*x[i] + b*y[i]
	}
}

// Dot returns sum(a[i] * b[i]).
func Dot[T core.Number](a, b []T) T {
	if fa, ok := any(a).([]float64); ok {
		return T(vecmath.DotProduct(fa, any(b).([]float64)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// SumSquares returns sum(x[i]^2).
func SumSquares[T core.Number](x []T) T {
	return Dot(x, x)
}

func axpy64(y, x []float64, a float64) {
	var tmp [blockSize]float64
	for off := 0; off < len(y); off += blockSize {
		n := min(blockSize, len(y)-off)
		vecmath.ScaleBlock(tmp[:n], x[off:off+n], a)
		vecmath.AddBlockInPlace(y[off:off+n], tmp[:n])
	}
}

func axpby64(dst, x, y []float64, a, b float64) {
	var tmp [blockSize]float64
	for off := 0; off < len(dst); off += blockSize {
		n := min(blockSize, len(dst)-off)
		// b*y first so dst may alias y.
		vecmath.ScaleBlock(tmp[:n], y[off:off+n], b)
		vecmath.ScaleBlock(dst[off:off+n], x[off:off+n], a)
		vecmath.AddBlockInPlace(dst[off:off+n], tmp[:n])
	}
}
