// Package alloc provides the raw byte allocators behind mem/buffer together
// with its alignment and size policy.
//
// Allocators hand out zeroed byte blocks. Reserve pads each request so an
// aligned window of the requested size can always be carved out of the
// block; the caller keeps the raw block to give it back with Free.
package alloc
