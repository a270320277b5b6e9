package buffer

import (
	"errors"

	"github.com/cwbudde/algo-linmem/mem/alloc"
	"github.com/cwbudde/algo-linmem/mem/layout"
)

var (
	ErrAllocationConflict = errors.New("buffer: storage already allocated")
	ErrInvalidSize        = alloc.ErrInvalidSize
	ErrSizeLimitExceeded  = alloc.ErrSizeLimitExceeded
	ErrAllocationFailure  = alloc.ErrAllocationFailure
	ErrDimensionMismatch  = layout.ErrDimensionMismatch
	ErrSelfAssignment     = errors.New("buffer: source and destination are the same storage")
	ErrNullAccess         = errors.New("buffer: storage not allocated")
	ErrOutOfBounds        = layout.ErrOutOfBounds
	ErrLengthMismatch     = errors.New("buffer: operand lengths differ")
	ErrMoveIntoNonEmpty   = errors.New("buffer: move target already holds storage")
)
