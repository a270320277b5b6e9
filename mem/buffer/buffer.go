package buffer

import (
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-linmem/mem/alloc"
	"github.com/cwbudde/algo-linmem/mem/core"
	"github.com/cwbudde/algo-linmem/mem/layout"
)

// UnsetLength is the length of a buffer that has never been allocated.
const UnsetLength = -(1 << 30)

// Buffer is a contiguous run of T with an optional row-major shape.
//
// The zero value is an empty buffer with default settings. Its Len is 0, as
// after Release, rather than UnsetLength; New reports the never-allocated
// state. Construct configured buffers with New, Make, MakeShaped, FromShape
// or Wrap.
type Buffer[T core.Number] struct {
	data   []T
	length int
	store  storage
	layout layout.Layout
	gen    uint64
	cfg    core.Config
}

func newBuffer[T core.Number](cfg core.Config) *Buffer[T] {
	return &Buffer[T]{length: UnsetLength, cfg: cfg}
}

// New returns an empty buffer whose allocation is deferred to Allocate.
func New[T core.Number](opts ...core.Option) *Buffer[T] {
	return newBuffer[T](core.ApplyOptions(opts...))
}

// Make returns a buffer holding n zeroed, aligned elements with shape [n].
func Make[T core.Number](n int, opts ...core.Option) (*Buffer[T], error) {
	b := New[T](opts...)
	if err := b.Allocate(n); err != nil {
		return nil, err
	}
	return b, nil
}

// MakeShaped allocates n elements and attaches shape, whose extents must
// multiply to n.
func MakeShaped[T core.Number](n int, shape layout.Shape, opts ...core.Option) (*Buffer[T], error) {
	b, err := Make[T](n, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.AttachDimension(shape...); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// FromShape allocates as many elements as shape describes and attaches it.
func FromShape[T core.Number](shape layout.Shape, opts ...core.Option) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return MakeShaped[T](shape.NumElements(), shape, opts...)
}

// Wrap returns a buffer that borrows data. The buffer never frees data, and
// data must stay valid for as long as the buffer is used. Alignment of
// wrapped storage is whatever the caller provides.
func Wrap[T core.Number](data []T, opts ...core.Option) (*Buffer[T], error) {
	b := New[T](opts...)
	if len(data) == 0 {
		return nil, fmt.Errorf("buffer %q: wrap: %w", b.cfg.Tag, ErrInvalidSize)
	}
	n := len(data)
	b.data = data[:n:n]
	b.length = n
	b.layout = layout.Flat(n)
	b.bind(borrowedStorage{})
	return b, nil
}

// Allocate reserves n zeroed elements aligned to the configured boundary
// (32 bytes by default) and resets the shape to [n].
func (b *Buffer[T]) Allocate(n int) error {
	if b.store != nil {
		return fmt.Errorf("buffer %q: allocate %d: %w (holds %d elements)", b.cfg.Tag, n, ErrAllocationConflict, b.length)
	}
	b.cfg = b.cfg.Resolved()

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	blk, err := alloc.Reserve(b.cfg.Allocator, n, elemSize, b.cfg.Alignment)
	if err != nil {
		return fmt.Errorf("buffer %q: allocate %d: %w", b.cfg.Tag, n, err)
	}

	b.data = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(blk.Bytes))), n)
	b.length = n
	b.layout = layout.Flat(n)
	b.bind(&ownedStorage{alloc: b.cfg.Allocator, raw: blk.Raw})

	b.cfg.Logger.Debug("allocate",
		zap.String("tag", b.cfg.Tag),
		zap.Int("length", n),
		zap.Int("bytes", n*elemSize),
		zap.Int("alignment", b.cfg.Alignment))
	return nil
}

// AttachDimension reinterprets the storage with a new row-major shape. The
// product of dims must equal Len(). Contents are not touched and the call
// may be repeated.
func (b *Buffer[T]) AttachDimension(dims ...int) error {
	if b.store == nil {
		return fmt.Errorf("buffer %q: attach dimension %v: %w", b.cfg.Tag, dims, ErrNullAccess)
	}
	l, err := layout.New(b.length, dims...)
	if err != nil {
		return fmt.Errorf("buffer %q: %w", b.cfg.Tag, err)
	}
	b.layout = l
	return nil
}

// bind installs s as the buffer's storage. Owned storage gets a cleanup that
// logs a warning if the buffer is dropped unreleased. The block itself is
// only freed by Release.
func (b *Buffer[T]) bind(s storage) {
	b.store = s
	if o, ok := s.(*ownedStorage); ok {
		o.cleanup = runtime.AddCleanup(b, reportLeak, leak{logger: b.cfg.Logger, tag: b.cfg.Tag, length: b.length})
		o.bound = true
	}
}

// reset returns b to the empty state and invalidates its views.
func (b *Buffer[T]) reset() {
	b.data = nil
	b.length = 0
	b.layout = layout.Layout{}
	b.store = nil
	b.gen++
}

// Len returns the element count: UnsetLength before the first allocation,
// 0 after Release or a move-out.
func (b *Buffer[T]) Len() int { return b.length }

// Allocated reports whether b currently holds storage.
func (b *Buffer[T]) Allocated() bool { return b.store != nil }

// Ownership reports who releases b's storage.
func (b *Buffer[T]) Ownership() Ownership {
	if b.store == nil {
		return OwnershipNone
	}
	return b.store.ownership()
}

// Dim returns the number of dimensions of the attached shape.
func (b *Buffer[T]) Dim() int { return b.layout.Dim() }

// Shape returns a copy of the attached shape.
func (b *Buffer[T]) Shape() layout.Shape { return b.layout.Shape() }

// Strides returns a copy of the row-major strides.
func (b *Buffer[T]) Strides() layout.Strides { return b.layout.Strides() }

// Layout returns the attached shape and strides as a value.
func (b *Buffer[T]) Layout() layout.Layout { return b.layout }

// Data returns the flat storage. The slice aliases the buffer and is nil
// when nothing is allocated.
func (b *Buffer[T]) Data() []T { return b.data }

// Tag returns the diagnostic label.
func (b *Buffer[T]) Tag() string { return b.cfg.Tag }

// SetTag replaces the diagnostic label.
func (b *Buffer[T]) SetTag(tag string) { b.cfg.Tag = tag }
