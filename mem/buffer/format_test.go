package buffer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linmem/mem/core"
)

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrint(t *testing.T) {
	b := ramp[int](t, 4)

	var out bytes.Buffer
	require.NoError(t, b.Print(&out, "%4d\n"))
	assert.Equal(t, "   0\n   1\n   2\n   3\n", out.String())

	out.Reset()
	require.NoError(t, b.PrintRange(&out, 1, 3, "%d,"))
	assert.Equal(t, "1,2,", out.String())

	out.Reset()
	require.NoError(t, b.PrintRange(&out, 2, 2, "%d"))
	assert.Empty(t, out.String())
}

func TestPrintErrors(t *testing.T) {
	b := ramp[float64](t, 4)
	var out bytes.Buffer

	require.ErrorIs(t, b.PrintRange(&out, -1, 2, "%v"), ErrOutOfBounds)
	require.ErrorIs(t, b.PrintRange(&out, 0, 5, "%v"), ErrOutOfBounds)
	require.ErrorIs(t, b.PrintRange(&out, 3, 2, "%v"), ErrOutOfBounds)
	require.ErrorIs(t, New[float64]().Print(&out, "%v"), ErrNullAccess)
	require.ErrorIs(t, b.Print(failingWriter{}, "%v"), errWrite)
}

func TestString(t *testing.T) {
	b := ramp[float64](t, 10, core.WithTag("v1"))
	require.NoError(t, b.AttachDimension(5, 2))
	assert.Equal(t, "v1 [float64] len=10 shape=[5 2] owned", b.String())

	e := New[int32](core.WithTag("e"))
	assert.Equal(t, "e [int32] len=-1073741824 shape=[] none", e.String())

	assert.Equal(t, "owned", OwnershipOwned.String())
	assert.Equal(t, "borrowed", OwnershipBorrowed.String())
	assert.Equal(t, "none", OwnershipNone.String())
	assert.Equal(t, "unknown", Ownership(9).String())
}
