package hybridvec

import (
	"github.com/hupe1980/hybridvec/internal/debug"
	"github.com/hupe1980/hybridvec/internal/mem"
	"github.com/hupe1980/hybridvec/lane"
)

// Lanes returns the lane width v loads and stores with. It is 1 when T is
// not processed in lanes.
func (v *Vector[T, N, O]) Lanes() int {
	if v.lanes == 0 {
		return lane.Width[T]()
	}
	return v.lanes
}

// Load returns the lane starting at i. i must be a multiple of Lanes() and
// below Size(); the lane may extend into the zero padding.
func (v *Vector[T, N, O]) Load(i int) lane.Pack[T] {
	w := v.Lanes()
	if debug.Enabled {
		debug.Assert(i%w == 0, "unaligned load at %d (lanes %d)", i, w)
		debug.Assert(i >= 0 && i < v.size, "invalid load index %d for size %d", i, v.size)
	}
	return lane.Load(v.data[i:], w)
}

// LoadU returns the lane starting at any index i whose full lane lies
// within Capacity().
func (v *Vector[T, N, O]) LoadU(i int) lane.Pack[T] {
	w := v.Lanes()
	if debug.Enabled {
		debug.Assert(i >= 0 && i+w <= len(v.data), "invalid unaligned load index %d", i)
	}
	return lane.Load(v.data[i:], w)
}

// Store writes p at lane-aligned index i. Lanes written past Size() become
// part of the padding, so callers must only store zeros there.
func (v *Vector[T, N, O]) Store(i int, p lane.Pack[T]) {
	v.copyCheck()
	if debug.Enabled {
		w := v.Lanes()
		debug.Assert(i%w == 0, "unaligned store at %d (lanes %d)", i, w)
		debug.Assert(i >= 0 && i < v.size, "invalid store index %d for size %d", i, v.size)
	}
	p.Store(v.data[i:])
}

// StoreU writes p at any index i whose full lane lies within Capacity().
func (v *Vector[T, N, O]) StoreU(i int, p lane.Pack[T]) {
	v.copyCheck()
	if debug.Enabled {
		debug.Assert(i >= 0 && i+p.Lanes() <= len(v.data), "invalid unaligned store index %d", i)
	}
	p.Store(v.data[i:])
}

// Stream is a non-temporal Store. Go has no cache-bypassing store, so it
// behaves exactly like Store.
func (v *Vector[T, N, O]) Stream(i int, p lane.Pack[T]) {
	v.Store(i, p)
}

// IsAligned reports whether the storage starts on a 64-byte boundary. It
// is always true for allocated vectors.
func (v *Vector[T, N, O]) IsAligned() bool {
	return mem.IsAligned(v.data)
}

// CanAlias reports whether reading v may observe writes to target.
func (v *Vector[T, N, O]) CanAlias(target any) bool {
	return target == any(v)
}

// IsAliased reports whether v is target.
func (v *Vector[T, N, O]) IsAliased(target any) bool {
	return target == any(v)
}
