package kernel

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-linmem/internal/testutil"
)

var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 255, 256, 257, 1000}

func TestScaleFloat64(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			got := testutil.DeterministicNoise(int64(n), 2, n)
			want := make([]float64, n)
			for i, v := range got {
				want[i] = v * -1.5
			}
			Scale(got, -1.5)
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
		})
	}
}

func TestScaleAndDivideInt(t *testing.T) {
	v := testutil.Iota[int](10)
	Scale(v, 3)
	for i, x := range v {
		if x != 3*i {
			t.Fatalf("v[%d] = %d, want %d", i, x, 3*i)
		}
	}
	Divide(v, 3)
	for i, x := range v {
		if x != i {
			t.Fatalf("v[%d] = %d, want %d", i, x, i)
		}
	}
}

func TestDivideFloat32(t *testing.T) {
	v := []float32{1, 2, 4}
	Divide(v, 4)
	testutil.RequireSliceNearlyEqual(t, v, []float32{0.25, 0.5, 1}, 0)
}

func TestFill(t *testing.T) {
	v := make([]uint16, 9)
	Fill(v, 7)
	if d, err := testutil.MaxAbsDiff(v, testutil.Constant[uint16](7, 9)); err != nil || d != 0 {
		t.Fatalf("Fill: max diff %v, err %v", d, err)
	}
}

func TestAxPlusYFloat64(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(1, 1, n)
			y := testutil.DeterministicNoise(2, 1, n)
			want := make([]float64, n)
			for i := range want {
				want[i] = y[i] + 0.75*x[i]
			}
			AxPlusY(y, x, 0.75)
			testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
		})
	}
}

func TestAxPlusYAliased(t *testing.T) {
	y := testutil.Ramp(300, 1.0, 1.0)
	want := make([]float64, len(y))
	for i, v := range y {
		want[i] = v + 2*v
	}
	AxPlusY(y, y, 2)
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}

func TestAxPlusYInt(t *testing.T) {
	x := testutil.Iota[int64](10)
	y := testutil.Iota[int64](10)
	AxPlusY(y, x, -1)
	for i, v := range y {
		if v != 0 {
			t.Fatalf("y[%d] = %d, want 0", i, v)
		}
	}
}

func TestAxPlusByFloat64(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(3, 1, n)
			y := testutil.DeterministicNoise(4, 1, n)
			dst := make([]float64, n)
			want := make([]float64, n)
			for i := range want {
				want[i] = 2*x[i] - 0.5*y[i]
			}
			AxPlusBy(dst, x, y, 2, -0.5)
			testutil.RequireFinite(t, dst)
			testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)
		})
	}
}

func TestAxPlusByAliasesDestination(t *testing.T) {
	x := testutil.Ramp(513, 0.0, 1.0)
	y := testutil.Ramp(513, 10.0, -1.0)
	want := make([]float64, len(x))
	for i := range want {
		want[i] = 3*x[i] + 2*y[i]
	}

	// dst aliases y
	AxPlusBy(y, x, y, 3, 2)
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)

	// dst aliases x
	x2 := testutil.Ramp(513, 0.0, 1.0)
	y2 := testutil.Ramp(513, 10.0, -1.0)
	AxPlusBy(x2, x2, y2, 3, 2)
	testutil.RequireSliceNearlyEqual(t, x2, want, 1e-12)
}

func TestAxPlusByInt(t *testing.T) {
	x := []int32{1, 2, 3}
	y := []int32{4, 5, 6}
	dst := make([]int32, 3)
	AxPlusBy(dst, x, y, 2, 3)
	want := []int32{14, 19, 24}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestDot(t *testing.T) {
	v := testutil.Iota[float64](10)
	if got := Dot(v, v); got != 285 {
		t.Fatalf("Dot = %v, want 285", got)
	}
	iv := testutil.Iota[int](10)
	if got := SumSquares(iv); got != 285 {
		t.Fatalf("SumSquares = %d, want 285", got)
	}
	if got := Dot([]float64{}, []float64{}); got != 0 {
		t.Fatalf("empty Dot = %v, want 0", got)
	}
}

func TestDotFloat64Parity(t *testing.T) {
	for _, n := range sizes {
		a := testutil.DeterministicNoise(5, 1, n)
		b := testutil.DeterministicNoise(6, 1, n)
		var want float64
		for i := range a {
			want += a[i] * b[i]
		}
		if got := Dot(a, b); got-want > 1e-9 || want-got > 1e-9 {
			t.Fatalf("n=%d: Dot = %v, want %v", n, got, want)
		}
	}
}
