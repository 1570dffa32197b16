package hybridvec

import (
	"fmt"

	"github.com/hupe1980/hybridvec/internal/debug"
)

// classify reports whether src is sparse, or fails if it is neither dense
// nor sparse. Dense wins for types implementing both.
func classify[T Scalar, O Orientation](op Op, src Expression[T, O]) (sparse bool, err error) {
	if _, ok := src.(DenseExpression[T, O]); ok {
		return false, nil
	}
	if _, ok := src.(SparseExpression[T, O]); ok {
		return true, nil
	}
	return false, reject(op, fmt.Errorf("%w: %T", ErrUnsupportedExpression, src))
}

// Assign replaces the contents of v with src, resizing v to src.Size().
//
// If src may read v, it is evaluated into a temporary first and swapped in.
// A sparse src leaves zeros at every index without an explicit entry.
// Nothing is written when an error is returned.
func (v *Vector[T, N, O]) Assign(src Expression[T, O]) error {
	n := src.Size()
	if err := checkSize(n, bound[N]()); err != nil {
		return reject(OpAssign, err)
	}
	sparse, err := classify[T, O](OpAssign, src)
	if err != nil {
		return err
	}

	if src.CanAlias(v) {
		tmp := v.sibling()
		tmp.size = n
		if err := tmp.assignFrom(OpAssign, src); err != nil {
			return err
		}
		v.fallback(OpAssign, n)
		v.Swap(tmp)
		return nil
	}

	v.resize(n)
	if sparse {
		v.Reset()
	}
	return v.assignFrom(OpAssign, src)
}

// AddAssign adds src to v elementwise. Sizes must match.
func (v *Vector[T, N, O]) AddAssign(src Expression[T, O]) error {
	return v.combineAssign(OpAdd, src)
}

// SubAssign subtracts src from v elementwise. Sizes must match.
func (v *Vector[T, N, O]) SubAssign(src Expression[T, O]) error {
	return v.combineAssign(OpSub, src)
}

func (v *Vector[T, N, O]) combineAssign(op Op, src Expression[T, O]) error {
	if src.Size() != v.size {
		return reject(op, &ErrSizeMismatch{Expected: v.size, Actual: src.Size()})
	}
	if _, err := classify[T, O](op, src); err != nil {
		return err
	}

	if src.CanAlias(v) {
		tmp, err := v.materialize(src)
		if err != nil {
			return err
		}
		v.fallback(op, v.size)
		return v.assignFrom(op, tmp)
	}
	return v.assignFrom(op, src)
}

// MulAssign multiplies v by src elementwise. Sizes must match.
//
// A sparse or aliased src is multiplied into a copy of v which then
// replaces v, so elements without an explicit sparse entry become zero.
func (v *Vector[T, N, O]) MulAssign(src Expression[T, O]) error {
	if src.Size() != v.size {
		return reject(OpMul, &ErrSizeMismatch{Expected: v.size, Actual: src.Size()})
	}
	sparse, err := classify[T, O](OpMul, src)
	if err != nil {
		return err
	}

	if aliased := src.CanAlias(v); sparse || aliased {
		tmp := v.Clone()
		if err := tmp.assignFrom(OpMul, src); err != nil {
			return err
		}
		if aliased {
			v.fallback(OpMul, v.size)
		}
		v.Swap(tmp)
		return nil
	}
	return v.assignFrom(OpMul, src)
}

// materialize evaluates src into a new vector laid out like v.
func (v *Vector[T, N, O]) materialize(src Expression[T, O]) (*Vector[T, N, O], error) {
	tmp := v.sibling()
	tmp.size = src.Size()
	if err := tmp.assignFrom(OpAssign, src); err != nil {
		return nil, err
	}
	return tmp, nil
}

func (v *Vector[T, N, O]) fallback(op Op, n int) {
	metrics().RecordAliasFallback(op)
	logger.Load().LogAliasFallback(op, n)
}

// CopyFrom makes v a deep copy of w.
func (v *Vector[T, N, O]) CopyFrom(w *Vector[T, N, O]) {
	if v == w {
		return
	}
	v.resize(w.size)
	copy(v.data, w.data[:w.size])
}

// AssignSlice replaces the contents of v with a copy of src.
func (v *Vector[T, N, O]) AssignSlice(src []T) error {
	if err := checkSize(len(src), bound[N]()); err != nil {
		return reject(OpAssign, err)
	}
	v.resize(len(src))
	copy(v.data, src)
	return nil
}

// Fill sets every live element to x. The padding is not touched.
func (v *Vector[T, N, O]) Fill(x T) {
	v.copyCheck()
	for i := range v.size {
		v.data[i] = x
	}
}

// MulScalar multiplies v by s through the assignment engine.
func (v *Vector[T, N, O]) MulScalar(s T) {
	v.replace(v.Scaled(s))
}

// DivScalar divides v by s through the assignment engine. s must not be
// zero; only builds tagged hybriddebug check this.
func (v *Vector[T, N, O]) DivScalar(s T) {
	if debug.Enabled {
		debug.Assert(s != 0, "division by zero")
	}
	v.replace(v.Divided(s))
}

// replace assigns an expression over v itself, which always aliases.
func (v *Vector[T, N, O]) replace(src DenseExpression[T, O]) {
	tmp := v.sibling()
	tmp.size = v.size
	if tmp.vectorizedWith(src) {
		tmp.laneKernel(OpAssign, src)
		metrics().RecordAssign(OpAssign, PathVectorized, v.size)
	} else {
		tmp.scalarKernel(OpAssign, src)
		metrics().RecordAssign(OpAssign, PathScalar, v.size)
	}
	v.fallback(OpAssign, v.size)
	v.Swap(tmp)
}
