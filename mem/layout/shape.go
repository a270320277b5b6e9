package layout

import (
	"fmt"
	"math"
)

// Shape holds per-dimension extents. Example: Shape{2, 5} is two rows of five.
type Shape []int

// Strides holds per-dimension element offsets for one unit of index.
type Strides []int

// NumElements returns the product of all extents, or 0 for an empty shape,
// one containing a non-positive extent, or one whose product overflows int.
func (s Shape) NumElements() int {
	n, ok := s.product()
	if !ok {
		return 0
	}
	return n
}

func (s Shape) product() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 1
	for _, d := range s {
		if d <= 0 || n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}
	return n, true
}

// Validate checks that the shape has at least one dimension and that all
// extents are positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty shape", ErrDimensionMismatch)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w: extent %d at dimension %d must be > 0", ErrDimensionMismatch, d, i)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	if s == nil {
		return nil
	}
	c := make(Strides, len(s))
	copy(c, s)
	return c
}

// RowMajor derives C-order strides: strides[d-1] = 1 and
// strides[i] = strides[i+1] * shape[i+1].
func RowMajor(shape Shape) Strides {
	if len(shape) == 0 {
		return nil
	}
	strides := make(Strides, len(shape))
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}
