package hybridvec

import (
	"fmt"
	"slices"

	"github.com/hupe1980/hybridvec/internal/debug"
	"github.com/hupe1980/hybridvec/lane"
)

// AssignFrom overwrites v with src. Sizes must match. A sparse src only
// writes its explicit entries; all other elements keep their value.
//
// AssignFrom performs no aliasing check. Use Assign for sources that may
// read v.
func (v *Vector[T, N, O]) AssignFrom(src Expression[T, O]) error {
	return v.assignFrom(OpAssign, src)
}

// AddAssignFrom adds src to v elementwise. Sizes must match.
func (v *Vector[T, N, O]) AddAssignFrom(src Expression[T, O]) error {
	return v.assignFrom(OpAdd, src)
}

// SubAssignFrom subtracts src from v elementwise. Sizes must match.
func (v *Vector[T, N, O]) SubAssignFrom(src Expression[T, O]) error {
	return v.assignFrom(OpSub, src)
}

// MulAssignFrom multiplies v by src elementwise. Sizes must match. For a
// sparse src every element without an explicit entry becomes zero.
func (v *Vector[T, N, O]) MulAssignFrom(src Expression[T, O]) error {
	return v.assignFrom(OpMul, src)
}

func (v *Vector[T, N, O]) assignFrom(op Op, src Expression[T, O]) error {
	v.copyCheck()
	if src.Size() != v.size {
		return reject(op, &ErrSizeMismatch{Expected: v.size, Actual: src.Size()})
	}

	switch s := src.(type) {
	case DenseExpression[T, O]:
		if v.vectorizedWith(s) {
			v.laneKernel(op, s)
			metrics().RecordAssign(op, PathVectorized, v.size)
		} else {
			v.scalarKernel(op, s)
			metrics().RecordAssign(op, PathScalar, v.size)
		}
	case SparseExpression[T, O]:
		v.sparseKernel(op, s)
		metrics().RecordAssign(op, PathSparse, s.NonZeros())
	default:
		return reject(op, fmt.Errorf("%w: %T", ErrUnsupportedExpression, src))
	}
	return nil
}

// vectorizedWith reports whether the lane kernel may be used for src: both
// sides must work in the same lane width, and that width must exceed one.
func (v *Vector[T, N, O]) vectorizedWith(src DenseExpression[T, O]) bool {
	w := v.Lanes()
	return w > 1 && src.Lanes() == w
}

func (v *Vector[T, N, O]) scalarKernel(op Op, src DenseExpression[T, O]) {
	dst := v.data[:v.size]
	switch op {
	case OpAssign:
		for i := range dst {
			dst[i] = src.At(i)
		}
	case OpAdd:
		for i := range dst {
			dst[i] += src.At(i)
		}
	case OpSub:
		for i := range dst {
			dst[i] -= src.At(i)
		}
	case OpMul:
		for i := range dst {
			dst[i] *= src.At(i)
		}
	}
}

// laneKernel processes full lanes, then the trailing partial lane. The
// trailing lane is loaded in full but only its live part is stored, so the
// padding stays zero whatever the operator does to padded lanes.
func (v *Vector[T, N, O]) laneKernel(op Op, src DenseExpression[T, O]) {
	w := v.Lanes()
	n := v.size
	full := n - n%w

	i := 0
	for ; i < full; i += w {
		v.combine(op, i, src.Load(i)).Store(v.data[i:])
	}
	if i < n {
		p := v.combine(op, i, src.Load(i))
		p.StorePartial(v.data[i:], n-i)
	}
}

func (v *Vector[T, N, O]) combine(op Op, i int, p lane.Pack[T]) lane.Pack[T] {
	if op == OpAssign {
		return p
	}
	cur := lane.Load(v.data[i:], v.Lanes())
	switch op {
	case OpAdd:
		return cur.Add(p)
	case OpSub:
		return cur.Sub(p)
	default:
		return cur.Mul(p)
	}
}

func (v *Vector[T, N, O]) sparseKernel(op Op, src SparseExpression[T, O]) {
	if op == OpMul {
		v.sparseMul(src)
		return
	}
	for i, x := range src.All() {
		if debug.Enabled {
			debug.Assert(i >= 0 && i < v.size, "sparse index %d out of range for size %d", i, v.size)
		}
		switch op {
		case OpAssign:
			v.data[i] = x
		case OpAdd:
			v.data[i] += x
		case OpSub:
			v.data[i] -= x
		}
	}
}

// sparseMul keeps only the products at src's explicit entries. Every other
// element is multiplied by an implicit zero.
func (v *Vector[T, N, O]) sparseMul(src SparseExpression[T, O]) {
	snapshot := slices.Clone(v.data[:v.size])
	clear(v.data[:v.size])
	for i, x := range src.All() {
		if debug.Enabled {
			debug.Assert(i >= 0 && i < v.size, "sparse index %d out of range for size %d", i, v.size)
		}
		v.data[i] = snapshot[i] * x
	}
}
