// Package buffer provides Buffer, a dense, contiguous numeric buffer with
// explicit ownership, 32-byte aligned zeroed allocation and strided
// multi-dimensional access.
//
// A Buffer is created empty (New), allocated (Make, MakeShaped, FromShape)
// or wrapped around storage owned elsewhere (Wrap). Its shape can be
// reattached any number of times as long as the product of extents matches
// the length; this reinterprets the same storage without touching it. View
// builds an independent shaped view instead of mutating the buffer.
//
// Ownership moves explicitly. CopyFrom duplicates raw contents into an
// existing allocation of equal length and keeps the destination's shape.
// Move and MoveFrom transfer the allocation and leave the source empty.
// Release hands owned storage back to its allocator; borrowed storage is
// never freed. Release is typically deferred right after construction:
//
//	b, err := buffer.Make[float64](1024)
//	if err != nil {
//		return err
//	}
//	defer b.Release()
//
// Every checked operation reports violations as errors wrapping one of the
// package's sentinel errors. A Buffer is not safe for concurrent mutation
// and must not be copied by value.
package buffer
