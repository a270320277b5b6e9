package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linmem/mem/layout"
)

func TestAtFlat(t *testing.T) {
	b := ramp[int](t, 10)

	p, err := b.At(9)
	require.NoError(t, err)
	assert.Equal(t, 9, *p)

	*p = -1
	assert.Equal(t, -1, b.Data()[9], "At must return a live reference")

	for _, i := range []int{-1, 10, 100} {
		_, err := b.At(i)
		require.ErrorIs(t, err, ErrOutOfBounds, "index %d", i)
	}

	_, err = New[int]().At(0)
	require.ErrorIs(t, err, ErrNullAccess)
}

func TestAtUnchecked(t *testing.T) {
	b := ramp[float32](t, 4)
	*b.AtUnchecked(2) += 0.5
	assert.Equal(t, float32(2.5), b.Data()[2])
}

func TestAt2(t *testing.T) {
	b := ramp[int](t, 10)
	require.NoError(t, b.AttachDimension(2, 5))

	p, err := b.At2([2]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 6, *p)

	for i := range 2 {
		for j := range 5 {
			p, err := b.At2([2]int{i, j})
			require.NoError(t, err)
			assert.Equal(t, i*5+j, *p)
		}
	}

	_, err = b.At3([3]int{0, 0, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = b.At2([2]int{2, 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestAt3(t *testing.T) {
	b := shaped[int64](t, layout.Shape{2, 3, 4})
	for i := range b.Data() {
		*b.AtUnchecked(i) = int64(i)
	}

	p, err := b.At3([3]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1*12+2*4+3), *p)

	*p = 100
	assert.Equal(t, int64(100), b.Data()[23])

	_, err = b.At2([2]int{0, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAtIndex(t *testing.T) {
	b := ramp[int](t, 10)

	// Default shape is one-dimensional.
	assert.Equal(t, 4, at(t, b, 4))

	_, err := b.AtIndex(1, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	require.NoError(t, b.AttachDimension(5, 2))
	assert.Equal(t, 3, at(t, b, 1, 1))

	_, err = b.AtIndex(5, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.AtIndex(0, -1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New[int]().AtIndex(0)
	require.ErrorIs(t, err, ErrNullAccess)
}
