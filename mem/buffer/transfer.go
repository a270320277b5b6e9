package buffer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-linmem/mem/core"
)

// CopyFrom duplicates src's elements into b. Both must hold distinct
// storage of equal length. Only raw contents are copied; b keeps its own
// shape because it may carry a different, intentional interpretation of the
// same flat data.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) error {
	if b == src {
		return fmt.Errorf("buffer %q: copy: %w", b.cfg.Tag, ErrSelfAssignment)
	}
	if b.store == nil || src == nil || src.store == nil {
		return fmt.Errorf("buffer %q: copy: %w", b.cfg.Tag, ErrNullAccess)
	}
	if sameStorage(b.data, src.data) {
		return fmt.Errorf("buffer %q: copy from %q: %w", b.cfg.Tag, src.cfg.Tag, ErrSelfAssignment)
	}
	if b.length != src.length {
		return fmt.Errorf("buffer %q: copy: %w (%d vs %d)", b.cfg.Tag, ErrLengthMismatch, b.length, src.length)
	}
	copy(b.data, src.data)
	return nil
}

// Clone returns a new owning buffer with b's length, allocator, alignment
// and logger, a flat shape and a copy of b's contents. opts override the
// inherited settings.
func (b *Buffer[T]) Clone(opts ...core.Option) (*Buffer[T], error) {
	if b.store == nil {
		return nil, fmt.Errorf("buffer %q: clone: %w", b.cfg.Tag, ErrNullAccess)
	}
	dst := newBuffer[T](b.inherit(opts))
	if err := dst.Allocate(b.length); err != nil {
		return nil, err
	}
	copy(dst.data, b.data)
	return dst, nil
}

// Move transfers b's storage, length, shape and ownership to a new buffer
// and leaves b empty with Len() == 0. Views of b become invalid.
func (b *Buffer[T]) Move(opts ...core.Option) *Buffer[T] {
	dst := newBuffer[T](b.inherit(opts))
	dst.take(b)
	return dst
}

// MoveFrom transfers src's storage into b. b must be empty; MoveFrom never
// releases storage on b's behalf. src is left empty.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) error {
	if b == src {
		return fmt.Errorf("buffer %q: move: %w", b.cfg.Tag, ErrSelfAssignment)
	}
	if b.store != nil {
		return fmt.Errorf("buffer %q: move: %w (holds %d elements)", b.cfg.Tag, ErrMoveIntoNonEmpty, b.length)
	}
	if src == nil || src.store == nil {
		return fmt.Errorf("buffer %q: move: %w", b.cfg.Tag, ErrNullAccess)
	}
	b.take(src)
	return nil
}

// Release frees owned storage and returns b to the empty state. Borrowed
// storage is only detached. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.store == nil {
		return
	}
	if b.store.ownership() == OwnershipOwned {
		b.cfg.Logger.Debug("release",
			zap.String("tag", b.cfg.Tag),
			zap.Int("length", b.length))
	}
	b.store.release()
	b.reset()
}

func (b *Buffer[T]) take(src *Buffer[T]) {
	b.cfg = b.cfg.Resolved()
	b.data = src.data
	b.length = src.length
	b.layout = src.layout
	if s := src.store; s != nil {
		s.detach()
		b.bind(s)
		b.cfg.Logger.Debug("move",
			zap.String("from", src.cfg.Tag),
			zap.String("to", b.cfg.Tag),
			zap.Int("length", b.length),
			zap.Stringer("ownership", s.ownership()))
	}
	src.reset()
}

// inherit derives a config for a buffer created from b: same allocator,
// alignment and logger, default tag.
func (b *Buffer[T]) inherit(opts []core.Option) core.Config {
	cfg := b.cfg
	cfg.Tag = core.DefaultTag
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func sameStorage[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
