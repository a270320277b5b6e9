package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-linmem/mem/core"
)

// Ramp returns the arithmetic progression start, start+step, ... of the
// given length.
func Ramp[T core.Number](length int, start, step T) []T {
	out := make([]T, length)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

// Iota returns 0, 1, ..., length-1.
func Iota[T core.Number](length int) []T {
	return Ramp[T](length, 0, 1)
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant[T core.Number](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
