package buffer

import "fmt"

// AtUnchecked returns a pointer to element i without validation. The caller
// guarantees b is allocated and 0 <= i < Len(); anything else is undefined
// and usually panics. Builds with the linmemdebug tag assert the bounds.
func (b *Buffer[T]) AtUnchecked(i int) *T {
	if debugChecks && (i < 0 || i >= b.length) {
		panic(fmt.Sprintf("buffer %q: unchecked index %d outside [0, %d)", b.cfg.Tag, i, b.length))
	}
	return &b.data[i]
}

// At returns a pointer to flat element i.
func (b *Buffer[T]) At(i int) (*T, error) {
	if b.store == nil {
		return nil, fmt.Errorf("buffer %q: at %d: %w", b.cfg.Tag, i, ErrNullAccess)
	}
	if i < 0 || i >= b.length {
		return nil, fmt.Errorf("buffer %q: at %d: %w (length %d)", b.cfg.Tag, i, ErrOutOfBounds, b.length)
	}
	return &b.data[i], nil
}

// AtIndex returns a pointer to the element at the multi-index idx. The
// arity must match Dim(); the flat offset sum(idx[k]*strides[k]) must fall
// inside [0, Len()).
func (b *Buffer[T]) AtIndex(idx ...int) (*T, error) {
	if b.store == nil {
		return nil, fmt.Errorf("buffer %q: at %v: %w", b.cfg.Tag, idx, ErrNullAccess)
	}
	off, err := b.layout.Offset(idx...)
	if err != nil {
		return nil, fmt.Errorf("buffer %q: %w", b.cfg.Tag, err)
	}
	return &b.data[off], nil
}

// At2 is AtIndex for matrices (Dim() == 2): ix is {row, col}.
func (b *Buffer[T]) At2(ix [2]int) (*T, error) { return b.AtIndex(ix[:]...) }

// At3 is AtIndex for rank-3 tensors (Dim() == 3).
func (b *Buffer[T]) At3(ix [3]int) (*T, error) { return b.AtIndex(ix[:]...) }
