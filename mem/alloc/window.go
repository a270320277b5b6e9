package alloc

import "unsafe"

// Window returns the size-byte subslice of raw whose first byte is aligned
// to alignment. The window's capacity is clipped to size. ok is false when
// raw is too short to hold an aligned window.
func Window(raw []byte, size, alignment int) (win []byte, ok bool) {
	if size <= 0 || !validAlignment(alignment) || len(raw) < size {
		return nil, false
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	shift := int(roundUp(addr, uintptr(alignment)) - addr)
	if shift+size > len(raw) {
		return nil, false
	}
	return raw[shift : shift+size : shift+size], true
}

// IsAligned reports whether p lies on an alignment boundary.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	if !validAlignment(alignment) {
		return false
	}
	return uintptr(p)&uintptr(alignment-1) == 0
}

func roundUp(addr, alignment uintptr) uintptr {
	return (addr + alignment - 1) &^ (alignment - 1)
}
