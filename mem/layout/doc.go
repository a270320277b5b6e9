// Package layout maps multi-dimensional indices onto flat offsets.
//
// A Layout pairs a Shape with the row-major Strides derived from it: the
// last dimension is contiguous and each preceding stride is the product of
// all following extents. Layouts are plain values; rebuilding one never
// touches the storage it describes.
package layout
