package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-linmem/mem/core"
	"github.com/cwbudde/algo-linmem/mem/layout"
)

// View is an immutable shaped window over a buffer's storage. Building a
// view never changes the buffer's own shape, so views taken with different
// shapes coexist. A view borrows the storage: once the buffer is released
// or moved out, every access fails with ErrNullAccess.
type View[T core.Number] struct {
	buf    *Buffer[T]
	gen    uint64
	layout layout.Layout
}

// View returns a row-major view of b with the given extents, whose product
// must equal Len().
func (b *Buffer[T]) View(dims ...int) (View[T], error) {
	if b.store == nil {
		return View[T]{}, fmt.Errorf("buffer %q: view %v: %w", b.cfg.Tag, dims, ErrNullAccess)
	}
	l, err := layout.New(b.length, dims...)
	if err != nil {
		return View[T]{}, fmt.Errorf("buffer %q: %w", b.cfg.Tag, err)
	}
	return View[T]{buf: b, gen: b.gen, layout: l}, nil
}

// Valid reports whether the underlying storage is still the one the view
// was built over.
func (v View[T]) Valid() bool {
	return v.buf != nil && v.buf.store != nil && v.buf.gen == v.gen
}

// AtIndex returns a pointer to the element at idx.
func (v View[T]) AtIndex(idx ...int) (*T, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("view %v: %w", v.layout.Shape(), ErrNullAccess)
	}
	off, err := v.layout.Offset(idx...)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	return &v.buf.data[off], nil
}

// At2 is AtIndex for two-dimensional views.
func (v View[T]) At2(ix [2]int) (*T, error) { return v.AtIndex(ix[:]...) }

// At3 is AtIndex for three-dimensional views.
func (v View[T]) At3(ix [3]int) (*T, error) { return v.AtIndex(ix[:]...) }

// Dim returns the number of dimensions.
func (v View[T]) Dim() int { return v.layout.Dim() }

// Len returns the number of elements covered.
func (v View[T]) Len() int { return v.layout.Len() }

// Shape returns a copy of the extents.
func (v View[T]) Shape() layout.Shape { return v.layout.Shape() }

// Strides returns a copy of the strides.
func (v View[T]) Strides() layout.Strides { return v.layout.Strides() }
