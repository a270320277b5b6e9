package alloc

import "errors"

const (
	// DefaultAlignment is the storage alignment in bytes.
	DefaultAlignment = 32

	// MaxBytes caps a single reservation. Requests of MaxBytes or more are
	// rejected to catch runaway sizes.
	MaxBytes = 2 << 30
)

var (
	ErrInvalidSize       = errors.New("alloc: element count must be positive")
	ErrSizeLimitExceeded = errors.New("alloc: requested size reaches the 2 GiB limit")
	ErrAllocationFailure = errors.New("alloc: allocator returned no usable memory")
	ErrInvalidAlignment  = errors.New("alloc: alignment must be a positive power of two")
)

// Allocator hands out zeroed byte blocks.
//
// Allocate returns nil when the request cannot be satisfied. Free receives
// exactly the slice returned by Allocate; implementations that do not pool
// may treat it as a no-op.
type Allocator interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// Default is used when no allocator is configured.
var Default Allocator = GoAllocator{}

// GoAllocator delegates to the Go runtime and keeps Free as a no-op.
type GoAllocator struct{}

// Allocate returns a fresh zeroed block, or nil for a non-positive size.
func (GoAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// Free is a no-op; the garbage collector reclaims the block.
func (GoAllocator) Free([]byte) {}

// Block is a reservation returned by Reserve.
type Block struct {
	// Raw is the block as returned by the allocator. Pass it to Free.
	Raw []byte
	// Bytes is the aligned window of the requested size inside Raw.
	Bytes []byte
}

// CheckSize validates an element count against the size policy.
func CheckSize(n, elemSize int) error {
	if n <= 0 || elemSize <= 0 {
		return ErrInvalidSize
	}
	// n*elemSize >= MaxBytes without forming the product.
	if n >= (MaxBytes+elemSize-1)/elemSize {
		return ErrSizeLimitExceeded
	}
	return nil
}

// Reserve allocates room for n elements of elemSize bytes whose first byte
// lies on an alignment boundary.
func Reserve(a Allocator, n, elemSize, alignment int) (Block, error) {
	if err := CheckSize(n, elemSize); err != nil {
		return Block{}, err
	}
	if !validAlignment(alignment) {
		return Block{}, ErrInvalidAlignment
	}
	if a == nil {
		a = Default
	}

	size := n * elemSize
	raw := a.Allocate(size + alignment)
	if raw == nil {
		return Block{}, ErrAllocationFailure
	}
	win, ok := Window(raw, size, alignment)
	if !ok {
		a.Free(raw)
		return Block{}, ErrAllocationFailure
	}
	return Block{Raw: raw, Bytes: win}, nil
}

func validAlignment(alignment int) bool {
	return alignment > 0 && alignment&(alignment-1) == 0
}
