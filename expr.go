package hybridvec

import (
	"iter"

	"github.com/hupe1980/hybridvec/lane"
)

// Expression is anything that can be assigned to a Vector with element
// type T and orientation O.
type Expression[T Scalar, O Orientation] interface {
	// Size returns the number of elements the expression produces.
	Size() int
	// CanAlias reports whether evaluating the expression may read target.
	CanAlias(target any) bool
	// IsAliased reports whether the expression reads target directly.
	IsAliased(target any) bool
	// Orientation returns the orientation tag.
	Orientation() O
}

// DenseExpression is an expression that produces every element.
type DenseExpression[T Scalar, O Orientation] interface {
	Expression[T, O]
	// At returns element i.
	At(i int) T
	// Lanes returns the lane width Load works in, 1 if not vectorized.
	Lanes() int
	// Load returns the lane starting at i, a multiple of Lanes() below
	// Size(). Lanes beyond Size() are computed from zero padding.
	Load(i int) lane.Pack[T]
}

// SparseExpression is an expression with explicit entries only. Elements
// not yielded by All are implicitly zero.
type SparseExpression[T Scalar, O Orientation] interface {
	Expression[T, O]
	// NonZeros returns the number of explicit entries.
	NonZeros() int
	// All yields the explicit entries in increasing index order.
	All() iter.Seq2[int, T]
}

// BinaryExpr lazily combines two dense operands elementwise.
type BinaryExpr[T Scalar, O Orientation] struct {
	op    Op
	lhs   DenseExpression[T, O]
	rhs   DenseExpression[T, O]
	lanes int
}

// Add returns the lazy elementwise sum lhs + rhs.
func Add[T Scalar, O Orientation](lhs, rhs DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary(OpAdd, lhs, rhs)
}

// Sub returns the lazy elementwise difference lhs - rhs.
func Sub[T Scalar, O Orientation](lhs, rhs DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary(OpSub, lhs, rhs)
}

// Mul returns the lazy elementwise product lhs * rhs.
func Mul[T Scalar, O Orientation](lhs, rhs DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary(OpMul, lhs, rhs)
}

func newBinary[T Scalar, O Orientation](op Op, lhs, rhs DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	if lhs.Size() != rhs.Size() {
		return nil, reject(op, &ErrSizeMismatch{Expected: lhs.Size(), Actual: rhs.Size()})
	}
	lanes := 1
	if lhs.Lanes() == rhs.Lanes() {
		lanes = lhs.Lanes()
	}
	return &BinaryExpr[T, O]{op: op, lhs: lhs, rhs: rhs, lanes: lanes}, nil
}

func (e *BinaryExpr[T, O]) Size() int { return e.lhs.Size() }

func (e *BinaryExpr[T, O]) CanAlias(target any) bool {
	return e.lhs.CanAlias(target) || e.rhs.CanAlias(target)
}

func (e *BinaryExpr[T, O]) IsAliased(target any) bool {
	return e.lhs.IsAliased(target) || e.rhs.IsAliased(target)
}

func (e *BinaryExpr[T, O]) Orientation() O {
	var o O
	return o
}

func (e *BinaryExpr[T, O]) Lanes() int { return e.lanes }

func (e *BinaryExpr[T, O]) At(i int) T {
	a, b := e.lhs.At(i), e.rhs.At(i)
	switch e.op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	default:
		return a * b
	}
}

func (e *BinaryExpr[T, O]) Load(i int) lane.Pack[T] {
	if e.lanes == 1 {
		return lane.Broadcast(e.At(i), 1)
	}
	a, b := e.lhs.Load(i), e.rhs.Load(i)
	switch e.op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	default:
		return a.Mul(b)
	}
}

// ScaleExpr lazily multiplies or divides a dense operand by a scalar.
type ScaleExpr[T Scalar, O Orientation] struct {
	op      Op
	operand DenseExpression[T, O]
	s       T
}

// Scaled returns the lazy product x * s.
func Scaled[T Scalar, O Orientation](x DenseExpression[T, O], s T) *ScaleExpr[T, O] {
	return &ScaleExpr[T, O]{op: OpMul, operand: x, s: s}
}

// Divided returns the lazy quotient x / s.
func Divided[T Scalar, O Orientation](x DenseExpression[T, O], s T) *ScaleExpr[T, O] {
	return &ScaleExpr[T, O]{op: OpDiv, operand: x, s: s}
}

func (e *ScaleExpr[T, O]) Size() int { return e.operand.Size() }

func (e *ScaleExpr[T, O]) CanAlias(target any) bool { return e.operand.CanAlias(target) }

func (e *ScaleExpr[T, O]) IsAliased(target any) bool { return e.operand.IsAliased(target) }

func (e *ScaleExpr[T, O]) Orientation() O {
	var o O
	return o
}

func (e *ScaleExpr[T, O]) Lanes() int { return e.operand.Lanes() }

func (e *ScaleExpr[T, O]) At(i int) T {
	if e.op == OpDiv {
		return e.operand.At(i) / e.s
	}
	return e.operand.At(i) * e.s
}

func (e *ScaleExpr[T, O]) Load(i int) lane.Pack[T] {
	p := e.operand.Load(i)
	if e.op == OpDiv {
		return p.Div(lane.Broadcast(e.s, p.Lanes()))
	}
	return p.Scale(e.s)
}

// Scaled returns the lazy product v * s.
func (v *Vector[T, N, O]) Scaled(s T) *ScaleExpr[T, O] {
	return Scaled[T, O](v, s)
}

// Divided returns the lazy quotient v / s.
func (v *Vector[T, N, O]) Divided(s T) *ScaleExpr[T, O] {
	return Divided[T, O](v, s)
}

// Add returns the lazy elementwise sum v + x.
func (v *Vector[T, N, O]) Add(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpAdd, v, x)
}

// Sub returns the lazy elementwise difference v - x.
func (v *Vector[T, N, O]) Sub(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpSub, v, x)
}

// Mul returns the lazy elementwise product v * x.
func (v *Vector[T, N, O]) Mul(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpMul, v, x)
}

// Add returns the lazy elementwise sum e + x.
func (e *BinaryExpr[T, O]) Add(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpAdd, e, x)
}

// Sub returns the lazy elementwise difference e - x.
func (e *BinaryExpr[T, O]) Sub(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpSub, e, x)
}

// Mul returns the lazy elementwise product e * x.
func (e *BinaryExpr[T, O]) Mul(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpMul, e, x)
}

// Scaled returns the lazy product e * s.
func (e *BinaryExpr[T, O]) Scaled(s T) *ScaleExpr[T, O] {
	return Scaled[T, O](e, s)
}

// Scaled returns the lazy product e * s.
func (e *ScaleExpr[T, O]) Scaled(s T) *ScaleExpr[T, O] {
	return Scaled[T, O](e, s)
}

// Add returns the lazy elementwise sum e + x.
func (e *ScaleExpr[T, O]) Add(x DenseExpression[T, O]) (*BinaryExpr[T, O], error) {
	return newBinary[T, O](OpAdd, e, x)
}
