package hybridvec

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/hybridvec/internal/debug"
	"github.com/hupe1980/hybridvec/internal/mem"
	"github.com/hupe1980/hybridvec/lane"
)

// Vector is a dense vector with a fixed capacity N and a runtime size.
//
// Storage is allocated once, 64-byte aligned, and padded to a multiple of
// the lane width of T. It never grows. Slots from Size() up to Capacity()
// always hold zero, so lane-wide loads past the logical end read zeros.
//
// The zero value is an empty vector ready for use. A Vector must not be
// copied after first use: the copy would share storage with the original.
// Use Clone or CopyFrom instead; mutating a copy made by value panics. A
// Vector is not safe for concurrent mutation; concurrent readers are fine
// while no writer runs.
type Vector[T Scalar, N Bound, O Orientation] struct {
	addr  *Vector[T, N, O] // of receiver, to detect copies by value
	data  []T
	size  int
	lanes int
}

// ColumnVector is a column-oriented Vector.
type ColumnVector[T Scalar, N Bound] = Vector[T, N, Column]

// RowVector is a row-oriented Vector.
type RowVector[T Scalar, N Bound] = Vector[T, N, Row]

// New returns a vector of the given size with all elements zero.
func New[T Scalar, N Bound, O Orientation](size int) (*Vector[T, N, O], error) {
	return newVector[T, N, O](size, lane.Width[T]())
}

// NewFilled returns a vector of the given size with every element set to x.
func NewFilled[T Scalar, N Bound, O Orientation](size int, x T) (*Vector[T, N, O], error) {
	v, err := New[T, N, O](size)
	if err != nil {
		return nil, err
	}
	v.Fill(x)
	return v, nil
}

// NewFrom returns a vector of the given size initialized from the first
// size elements of src.
func NewFrom[T Scalar, N Bound, O Orientation](size int, src []T) (*Vector[T, N, O], error) {
	v, err := New[T, N, O](size)
	if err != nil {
		return nil, err
	}
	if len(src) < size {
		return nil, reject(OpAssign, &ErrSizeMismatch{Expected: size, Actual: len(src)})
	}
	copy(v.data, src[:size])
	return v, nil
}

// FromSlice returns a vector holding a copy of src.
func FromSlice[T Scalar, N Bound, O Orientation](src []T) (*Vector[T, N, O], error) {
	return NewFrom[T, N, O](len(src), src)
}

// NewFromExpr returns a vector holding the evaluated expression.
func NewFromExpr[T Scalar, N Bound, O Orientation](src Expression[T, O]) (*Vector[T, N, O], error) {
	v, err := New[T, N, O](src.Size())
	if err != nil {
		return nil, err
	}
	if err := v.assignFrom(OpAssign, src); err != nil {
		return nil, err
	}
	return v, nil
}

func newVector[T Scalar, N Bound, O Orientation](size, lanes int) (*Vector[T, N, O], error) {
	limit := bound[N]()
	if limit < 1 {
		return nil, reject(OpAssign, fmt.Errorf("%w: got %d", ErrInvalidBound, limit))
	}
	if err := checkSize(size, limit); err != nil {
		return nil, reject(OpAssign, err)
	}
	v := &Vector[T, N, O]{lanes: lanes}
	v.ensure()
	v.size = size
	return v, nil
}

// copyCheck panics when v is a by-value copy of a vector that was already
// in use.
func (v *Vector[T, N, O]) copyCheck() {
	if v.addr == nil {
		v.addr = v
	} else if v.addr != v {
		panic("hybridvec: illegal use of non-zero Vector copied by value")
	}
}

// ensure allocates storage for vectors created as zero values.
func (v *Vector[T, N, O]) ensure() {
	v.copyCheck()
	if v.lanes == 0 {
		v.lanes = lane.Width[T]()
	}
	if v.data == nil {
		v.data = mem.Alloc[T](lane.Padded(bound[N](), v.lanes))
	}
}

// sibling returns an empty vector with the same lane layout as v.
func (v *Vector[T, N, O]) sibling() *Vector[T, N, O] {
	w := &Vector[T, N, O]{lanes: v.Lanes()}
	w.ensure()
	return w
}

// Clone returns a deep copy of v.
func (v *Vector[T, N, O]) Clone() *Vector[T, N, O] {
	w := v.sibling()
	copy(w.data, v.data[:v.size])
	w.size = v.size
	return w
}

// Size returns the number of live elements.
func (v *Vector[T, N, O]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots: N rounded up to a
// multiple of the lane width. It never changes.
func (v *Vector[T, N, O]) Capacity() int {
	return lane.Padded(bound[N](), v.Lanes())
}

// Bound returns N.
func (v *Vector[T, N, O]) Bound() int {
	return bound[N]()
}

// Orientation returns the orientation tag of v.
func (v *Vector[T, N, O]) Orientation() O {
	var o O
	return o
}

// At returns element i.
func (v *Vector[T, N, O]) At(i int) T {
	if debug.Enabled {
		debug.Assert(i >= 0 && i < v.size, "invalid index %d for size %d", i, v.size)
	}
	return v.data[i]
}

// Set stores x at element i.
func (v *Vector[T, N, O]) Set(i int, x T) {
	v.copyCheck()
	if debug.Enabled {
		debug.Assert(i >= 0 && i < v.size, "invalid index %d for size %d", i, v.size)
	}
	v.data[i] = x
}

// Data returns the live elements. The slice aliases v's storage and is
// capped at Size(), so appending to it never touches the padding.
func (v *Vector[T, N, O]) Data() []T {
	return v.data[:v.size:v.size]
}

// All iterates over the live elements in index order.
func (v *Vector[T, N, O]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Resize changes the number of live elements to n. Shrinking zeroes the
// dropped elements. Growing exposes slots whose contents are unspecified;
// callers must write them before reading. preserve is accepted for
// interface parity with other vector kinds and has no effect: existing
// elements are always kept.
func (v *Vector[T, N, O]) Resize(n int, preserve bool) error {
	if err := checkSize(n, bound[N]()); err != nil {
		return reject(OpAssign, err)
	}
	v.resize(n)
	return nil
}

func (v *Vector[T, N, O]) resize(n int) {
	v.ensure()
	if n < v.size {
		clear(v.data[n:v.size])
	}
	v.size = n
}

// Extend grows v by delta elements. See Resize.
func (v *Vector[T, N, O]) Extend(delta int, preserve bool) error {
	if limit := bound[N](); delta > limit-v.size {
		requested := v.size + min(delta, math.MaxInt-v.size)
		return reject(OpAssign, &ErrCapacityExceeded{Requested: requested, Limit: limit})
	}
	return v.Resize(v.size+delta, preserve)
}

// Clear drops all elements.
func (v *Vector[T, N, O]) Clear() {
	v.copyCheck()
	if v.size == 0 {
		return
	}
	clear(v.data[:v.size])
	v.size = 0
}

// Reset sets every live element to zero and keeps the size.
func (v *Vector[T, N, O]) Reset() {
	v.copyCheck()
	if v.size == 0 {
		return
	}
	clear(v.data[:v.size])
}

// NonZeros counts the live elements that differ from zero.
func (v *Vector[T, N, O]) NonZeros() int {
	n := 0
	for _, x := range v.data[:v.size] {
		if x != 0 {
			n++
		}
	}
	return n
}

// Scale multiplies every live element by s in place.
func (v *Vector[T, N, O]) Scale(s T) {
	v.copyCheck()
	for i := range v.size {
		v.data[i] *= s
	}
}

// Swap exchanges the contents of v and w element by element and then their
// sizes. Slices obtained from Data stay attached to their own vector.
func (v *Vector[T, N, O]) Swap(w *Vector[T, N, O]) {
	if v == w {
		return
	}
	v.ensure()
	w.ensure()
	n := max(v.size, w.size)
	for i := range n {
		v.data[i], w.data[i] = w.data[i], v.data[i]
	}
	v.size, w.size = w.size, v.size
}

// String formats the live elements like a slice.
func (v *Vector[T, N, O]) String() string {
	return fmt.Sprint(v.data[:v.size])
}
