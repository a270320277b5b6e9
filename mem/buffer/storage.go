package buffer

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-linmem/mem/alloc"
)

// Ownership tags who is responsible for releasing a buffer's storage.
type Ownership uint8

const (
	// OwnershipNone marks a buffer without storage.
	OwnershipNone Ownership = iota
	// OwnershipOwned marks storage this buffer allocated and must release.
	OwnershipOwned
	// OwnershipBorrowed marks storage owned elsewhere.
	OwnershipBorrowed
)

func (o Ownership) String() string {
	switch o {
	case OwnershipNone:
		return "none"
	case OwnershipOwned:
		return "owned"
	case OwnershipBorrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}

// storage is the ownership-tagged handle a buffer holds while allocated.
type storage interface {
	ownership() Ownership
	// release gives the storage back; borrowed storage does nothing.
	release()
	// detach stops tracking the holder that is about to lose the storage.
	detach()
}

type ownedStorage struct {
	alloc   alloc.Allocator
	raw     []byte
	cleanup runtime.Cleanup
	bound   bool
}

func (*ownedStorage) ownership() Ownership { return OwnershipOwned }

func (s *ownedStorage) release() {
	s.detach()
	s.alloc.Free(s.raw)
	s.raw = nil
}

func (s *ownedStorage) detach() {
	if s.bound {
		s.cleanup.Stop()
		s.bound = false
	}
}

type borrowedStorage struct{}

func (borrowedStorage) ownership() Ownership { return OwnershipBorrowed }
func (borrowedStorage) release()             {}
func (borrowedStorage) detach()              {}

// leak is the cleanup argument; it must not reference the buffer or its
// storage. Element pointers and Data() slices may outlive the buffer, so an
// unreleased block is never handed back to the allocator; it is only
// reported and left to the garbage collector.
type leak struct {
	logger *zap.Logger
	tag    string
	length int
}

func reportLeak(l leak) {
	l.logger.Warn("buffer dropped without release",
		zap.String("tag", l.tag),
		zap.Int("length", l.length))
}
