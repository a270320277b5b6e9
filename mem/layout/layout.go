package layout

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDimensionMismatch = errors.New("layout: dimension mismatch")
	ErrOutOfBounds       = errors.New("layout: index out of bounds")
)

// Layout is a row-major view description over length contiguous elements.
// The zero Layout describes no storage and has Dim() == 0.
type Layout struct {
	shape   Shape
	strides Strides
	length  int
}

// Flat returns the one-dimensional layout [n].
func Flat(n int) Layout {
	if n <= 0 {
		return Layout{}
	}
	return Layout{shape: Shape{n}, strides: Strides{1}, length: n}
}

// New builds a layout for dims over length elements. The product of dims
// must equal length.
func New(length int, dims ...int) (Layout, error) {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		return Layout{}, err
	}
	n, ok := shape.product()
	if !ok {
		return Layout{}, fmt.Errorf("%w: shape %v overflows int", ErrDimensionMismatch, shape)
	}
	if n != length {
		return Layout{}, fmt.Errorf("%w: shape %v holds %d elements, length is %d",
			ErrDimensionMismatch, shape, n, length)
	}
	return Layout{shape: shape, strides: RowMajor(shape), length: length}, nil
}

// Dim returns the number of dimensions.
func (l Layout) Dim() int { return len(l.shape) }

// Len returns the number of elements covered.
func (l Layout) Len() int { return l.length }

// Shape returns a copy of the extents.
func (l Layout) Shape() Shape { return l.shape.Clone() }

// Strides returns a copy of the strides.
func (l Layout) Strides() Strides { return l.strides.Clone() }

// Extent returns the extent of dimension k, or 0 if k is out of range.
func (l Layout) Extent(k int) int {
	if k < 0 || k >= len(l.shape) {
		return 0
	}
	return l.shape[k]
}

// IsZero reports whether l describes no storage.
func (l Layout) IsZero() bool { return l.length == 0 && len(l.shape) == 0 }

// Offset returns sum(idx[k] * strides[k]). The arity of idx must match
// Dim() and the resulting offset must fall inside [0, Len()). Individual
// indices are not range-checked against their extents.
func (l Layout) Offset(idx ...int) (int, error) {
	if len(idx) != len(l.shape) {
		return 0, fmt.Errorf("%w: %d indices for %d dimensions", ErrDimensionMismatch, len(idx), len(l.shape))
	}
	off, ok := 0, true
	for k, i := range idx {
		var term int
		if term, ok = mulInt(i, l.strides[k]); !ok {
			break
		}
		if off, ok = addInt(off, term); !ok {
			break
		}
	}
	if !ok || off < 0 || off >= l.length {
		return 0, fmt.Errorf("%w: offset %d for index %v, length %d", ErrOutOfBounds, off, idx, l.length)
	}
	return off, nil
}

// mulInt returns a*b for a stride b > 0, or false on overflow.
func mulInt(a, b int) (int, bool) {
	if a > math.MaxInt/b || a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

func addInt(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func (l Layout) String() string {
	return fmt.Sprintf("shape=%v strides=%v", []int(l.shape), []int(l.strides))
}
