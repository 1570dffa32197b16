package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes.
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Alloc allocates a zeroed slice of n elements of T whose first element sits
// on a 64-byte boundary. T must not contain pointers: the backing array is a
// byte slice and the garbage collector does not scan it.
func Alloc[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return make([]T, n)
	}

	raw := AllocAligned(n * elem)
	ptr := unsafe.Pointer(&raw[0])   //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of s sits on an Alignment
// boundary. Empty slices are considered aligned.
func IsAligned[T any](s []T) bool {
	if len(s) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&s[0])) //nolint:gosec // unsafe is required for memory alignment
	return addr%Alignment == 0
}
