package lane

import (
	"unsafe"

	"github.com/hupe1980/hybridvec/internal/simd"
)

// minLaneBytes is the smallest element size processed in lanes.
const minLaneBytes = 4

// Signed is the set of signed integer element types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of element types a lane can hold. It is a subset of
// hwy.Lanes: int and uint are left out because their size depends on the
// platform. Every Number has a zero default, which is what padding slots
// are filled with.
type Number interface {
	Signed | Unsigned | Float
}

// Size returns the size of T in bytes.
func Size[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// WidthFor returns the lane width of T on the given ISA. It is 1 when the
// ISA has no vector registers or T is narrower than four bytes.
func WidthFor[T Number](isa simd.ISA) int {
	reg := isa.RegisterBytes()
	size := Size[T]()
	if reg == 0 || size < minLaneBytes {
		return 1
	}
	w := reg / size
	if w < 2 {
		return 1
	}
	return w
}

// Width returns the lane width of T on the active ISA.
func Width[T Number]() int {
	return WidthFor[T](simd.ActiveISA())
}

// Vectorizable reports whether T is processed more than one element at a
// time on the active ISA.
func Vectorizable[T Number]() bool {
	return Width[T]() > 1
}

// Padded rounds n up to the next multiple of width. A width below 2 leaves
// n unchanged.
func Padded(n, width int) int {
	if width < 2 {
		return n
	}
	return n + (width-n%width)%width
}
