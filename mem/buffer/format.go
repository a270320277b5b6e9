package buffer

import (
	"fmt"
	"io"
)

// Print writes every element to w, each formatted with the fmt verb string
// format (for example "%4d\n").
func (b *Buffer[T]) Print(w io.Writer, format string) error {
	return b.PrintRange(w, 0, b.length, format)
}

// PrintRange writes elements [bgn, end) to w, each formatted with format.
func (b *Buffer[T]) PrintRange(w io.Writer, bgn, end int, format string) error {
	if b.store == nil {
		return fmt.Errorf("buffer %q: print: %w", b.cfg.Tag, ErrNullAccess)
	}
	if bgn < 0 || end > b.length || bgn > end {
		return fmt.Errorf("buffer %q: print [%d, %d): %w (length %d)", b.cfg.Tag, bgn, end, ErrOutOfBounds, b.length)
	}
	for _, v := range b.data[bgn:end] {
		if _, err := fmt.Fprintf(w, format, v); err != nil {
			return err
		}
	}
	return nil
}

// String summarizes the buffer for diagnostics, e.g.
// `v1 [float64] len=10 shape=[5 2] owned`.
func (b *Buffer[T]) String() string {
	var zero T
	return fmt.Sprintf("%s [%T] len=%d shape=%v %s", b.cfg.Tag, zero, b.length, []int(b.layout.Shape()), b.Ownership())
}
