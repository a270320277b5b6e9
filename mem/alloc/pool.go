package alloc

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 6  // 64 B
	maxClassShift = 24 // 16 MiB
	numClasses    = maxClassShift - minClassShift + 1
)

// PoolAllocator recycles blocks through sync.Pool to reduce GC pressure when
// buffers are created and released in loops. Requests are rounded up to a
// power-of-two size class; requests above 16 MiB bypass the pool.
//
// Blocks handed out are always zeroed, whether fresh or reused.
type PoolAllocator struct {
	classes [numClasses]sync.Pool
}

// NewPoolAllocator returns a PoolAllocator ready for use.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// Allocate returns a zeroed block of the requested length.
func (p *PoolAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	c, ok := sizeClass(size)
	if !ok {
		return make([]byte, size)
	}
	if v := p.classes[c].Get(); v != nil {
		b := (*v.(*[]byte))[:size]
		clear(b)
		return b
	}
	return make([]byte, size, classSize(c))
}

// Free returns b to its size class. Blocks that did not come from a pool
// class are dropped. The caller must not use b after calling Free.
func (p *PoolAllocator) Free(b []byte) {
	if b == nil {
		return
	}
	c, ok := sizeClass(cap(b))
	if !ok || cap(b) != classSize(c) {
		return
	}
	b = b[:cap(b)]
	p.classes[c].Put(&b)
}

func sizeClass(size int) (int, bool) {
	shift := bits.Len(uint(size - 1))
	if shift < minClassShift {
		shift = minClassShift
	}
	if shift > maxClassShift {
		return 0, false
	}
	return shift - minClassShift, true
}

func classSize(c int) int {
	return 1 << (c + minClassShift)
}
