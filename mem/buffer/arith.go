package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-linmem/internal/kernel"
	"github.com/cwbudde/algo-linmem/mem/core"
)

// Fill overwrites every element with v.
func (b *Buffer[T]) Fill(v T) { kernel.Fill(b.data, v) }

// AssignFrom overwrites the elements in order with values, which must have
// exactly Len() entries.
func (b *Buffer[T]) AssignFrom(values ...T) error {
	if b.store == nil {
		return fmt.Errorf("buffer %q: assign: %w", b.cfg.Tag, ErrNullAccess)
	}
	if len(values) != b.length {
		return fmt.Errorf("buffer %q: assign: %w (%d values for length %d)", b.cfg.Tag, ErrLengthMismatch, len(values), b.length)
	}
	copy(b.data, values)
	return nil
}

// Scale multiplies every element by a.
func (b *Buffer[T]) Scale(a T) { kernel.Scale(b.data, a) }

// Divide divides every element by a. For integer T a zero divisor panics;
// avoiding it is the caller's responsibility.
func (b *Buffer[T]) Divide(a T) { kernel.Divide(b.data, a) }

// AxAddTo accumulates b[i] += a*x[i]. x must have b's length.
func (b *Buffer[T]) AxAddTo(a T, x *Buffer[T]) error {
	if err := b.sameLength("ax add", x); err != nil {
		return err
	}
	kernel.AxPlusY(b.data, x.data, a)
	return nil
}

// AxByAssign assigns b[i] = a*x[i] + c*y[i]. x and y must have b's length
// and may be b itself.
func (b *Buffer[T]) AxByAssign(a T, x *Buffer[T], c T, y *Buffer[T]) error {
	if err := b.sameLength("ax by assign", x, y); err != nil {
		return err
	}
	kernel.AxPlusBy(b.data, x.data, y.data, a, c)
	return nil
}

// L2NormSquare returns the sum of squared elements, 0 when empty.
func (b *Buffer[T]) L2NormSquare() T { return kernel.SumSquares(b.data) }

// L2Norm returns the Euclidean norm. For integer T the sum of squares is
// computed in T and may overflow; that is left to the caller.
func (b *Buffer[T]) L2Norm() float64 { return core.Sqrt(b.L2NormSquare()) }

// InnerProduct returns sum(v1[i]*v2[i]). Both buffers must be allocated
// with the same positive length.
func InnerProduct[T core.Number](v1, v2 *Buffer[T]) (T, error) {
	if v1 == nil || v2 == nil || v1.length <= 0 || v2.length <= 0 || v1.length != v2.length {
		return 0, fmt.Errorf("inner product: %w (%d vs %d)", ErrLengthMismatch, lengthOf(v1), lengthOf(v2))
	}
	return kernel.Dot(v1.data, v2.data), nil
}

func (b *Buffer[T]) sameLength(op string, operands ...*Buffer[T]) error {
	if b.store == nil {
		return fmt.Errorf("buffer %q: %s: %w", b.cfg.Tag, op, ErrNullAccess)
	}
	for _, x := range operands {
		if x == nil || x.store == nil {
			return fmt.Errorf("buffer %q: %s: operand %w", b.cfg.Tag, op, ErrNullAccess)
		}
		if x.length != b.length {
			return fmt.Errorf("buffer %q: %s: %w (%d vs %d)", b.cfg.Tag, op, ErrLengthMismatch, b.length, x.length)
		}
	}
	return nil
}

func lengthOf[T core.Number](b *Buffer[T]) int {
	if b == nil {
		return UnsetLength
	}
	return b.length
}
