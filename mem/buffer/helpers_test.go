package buffer

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linmem/internal/testutil"
	"github.com/cwbudde/algo-linmem/mem/alloc"
	"github.com/cwbudde/algo-linmem/mem/core"
	"github.com/cwbudde/algo-linmem/mem/layout"
)

// countingAllocator tracks calls; cleanups may free from another goroutine.
type countingAllocator struct {
	alloc.GoAllocator
	allocs atomic.Int64
	frees  atomic.Int64
}

func (c *countingAllocator) Allocate(n int) []byte {
	c.allocs.Add(1)
	return c.GoAllocator.Allocate(n)
}

func (c *countingAllocator) Free([]byte) { c.frees.Add(1) }

// countingPool counts blocks returned to a real pool.
type countingPool struct {
	*alloc.PoolAllocator
	frees atomic.Int64
}

func (c *countingPool) Free(b []byte) {
	c.frees.Add(1)
	c.PoolAllocator.Free(b)
}

type failingAllocator struct{}

func (failingAllocator) Allocate(int) []byte { return nil }
func (failingAllocator) Free([]byte)         {}

// ramp returns an allocated buffer holding 0..n-1.
func ramp[T core.Number](t *testing.T, n int, opts ...core.Option) *Buffer[T] {
	t.Helper()
	b, err := Make[T](n, opts...)
	require.NoError(t, err)
	require.NoError(t, b.AssignFrom(testutil.Iota[T](n)...))
	return b
}

func shaped[T core.Number](t *testing.T, shape layout.Shape, opts ...core.Option) *Buffer[T] {
	t.Helper()
	b, err := FromShape[T](shape, opts...)
	require.NoError(t, err)
	return b
}

func at[T core.Number](t *testing.T, b *Buffer[T], idx ...int) T {
	t.Helper()
	p, err := b.AtIndex(idx...)
	require.NoError(t, err)
	return *p
}
