package hybridvec

import (
	"fmt"

	"github.com/hupe1980/hybridvec/lane"
)

// Scalar is the set of element types a Vector can hold.
type Scalar interface {
	lane.Number
}

// Bound is a capacity carried in the type system. Implementations are empty
// structs whose Bound method returns a constant:
//
//	type N20 struct{}
//
//	func (N20) Bound() int { return 20 }
//
// Vectors with different bounds are different types, so capacity mismatches
// between swap or copy partners cannot compile.
type Bound interface {
	Bound() int
}

// Predefined capacity bounds.
type (
	N1   struct{}
	N2   struct{}
	N3   struct{}
	N4   struct{}
	N5   struct{}
	N6   struct{}
	N7   struct{}
	N8   struct{}
	N9   struct{}
	N10  struct{}
	N12  struct{}
	N16  struct{}
	N24  struct{}
	N32  struct{}
	N64  struct{}
	N128 struct{}
	N256 struct{}
)

func (N1) Bound() int   { return 1 }
func (N2) Bound() int   { return 2 }
func (N3) Bound() int   { return 3 }
func (N4) Bound() int   { return 4 }
func (N5) Bound() int   { return 5 }
func (N6) Bound() int   { return 6 }
func (N7) Bound() int   { return 7 }
func (N8) Bound() int   { return 8 }
func (N9) Bound() int   { return 9 }
func (N10) Bound() int  { return 10 }
func (N12) Bound() int  { return 12 }
func (N16) Bound() int  { return 16 }
func (N24) Bound() int  { return 24 }
func (N32) Bound() int  { return 32 }
func (N64) Bound() int  { return 64 }
func (N128) Bound() int { return 128 }
func (N256) Bound() int { return 256 }

func bound[N Bound]() int {
	var n N
	return n.Bound()
}

// Column and Row tag the orientation of a vector. Expressions only combine
// operands of the same orientation.
type (
	Column struct{}
	Row    struct{}
)

// Orientation is the set of orientation tags.
type Orientation interface {
	Column | Row
}

func isRow[O Orientation]() bool {
	var o O
	_, ok := any(o).(Row)
	return ok
}

// Op identifies an arithmetic operation.
type Op uint8

const (
	OpAssign Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpCross
)

func (o Op) String() string {
	switch o {
	case OpAssign:
		return "assign"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpCross:
		return "cross"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Kind is the category of an operand or result.
type Kind uint8

const (
	KindScalar Kind = iota
	KindVector
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Shape describes an operand for result-type resolution. For vectors,
// Capacity is the bound and Row the orientation. For matrices, Capacity is
// the row bound and Columns the column bound.
type Shape struct {
	Kind     Kind
	Capacity int
	Columns  int
	Row      bool
}

// ScalarShape is the shape of a plain element value.
var ScalarShape = Shape{Kind: KindScalar}

// ShapeOf returns the shape of Vector[T, N, O].
func ShapeOf[T Scalar, N Bound, O Orientation]() Shape {
	return Shape{Kind: KindVector, Capacity: bound[N](), Row: isRow[O]()}
}

func (s Shape) String() string {
	switch s.Kind {
	case KindScalar:
		return "scalar"
	case KindMatrix:
		return fmt.Sprintf("matrix[%dx%d]", s.Capacity, s.Columns)
	default:
		if s.Row {
			return fmt.Sprintf("row[%d]", s.Capacity)
		}
		return fmt.Sprintf("column[%d]", s.Capacity)
	}
}

// Resolve returns the shape of lhs op rhs.
//
// Elementwise add, sub, mul and div of two vectors with equal orientation
// yield a vector bounded by the smaller capacity. A vector scaled by a
// scalar keeps its shape. Column times row is an outer product (matrix) and
// row times column an inner product (scalar). Cross takes two column vectors
// and yields a three-element column vector.
func Resolve(op Op, lhs, rhs Shape) (Shape, error) {
	incompatible := func() (Shape, error) {
		return Shape{}, fmt.Errorf("%w: %s %s %s", ErrIncompatibleOperands, lhs, op, rhs)
	}

	switch op {
	case OpAdd, OpSub:
		if lhs.Kind != KindVector || rhs.Kind != KindVector || lhs.Row != rhs.Row {
			return incompatible()
		}
		return Shape{Kind: KindVector, Capacity: min(lhs.Capacity, rhs.Capacity), Row: lhs.Row}, nil

	case OpMul:
		switch {
		case lhs.Kind == KindVector && rhs.Kind == KindScalar:
			return lhs, nil
		case lhs.Kind == KindScalar && rhs.Kind == KindVector:
			return rhs, nil
		case lhs.Kind == KindVector && rhs.Kind == KindVector:
			switch {
			case lhs.Row == rhs.Row:
				return Shape{Kind: KindVector, Capacity: min(lhs.Capacity, rhs.Capacity), Row: lhs.Row}, nil
			case !lhs.Row:
				return Shape{Kind: KindMatrix, Capacity: lhs.Capacity, Columns: rhs.Capacity}, nil
			default:
				return ScalarShape, nil
			}
		}
		return incompatible()

	case OpDiv:
		switch {
		case lhs.Kind == KindVector && rhs.Kind == KindScalar:
			return lhs, nil
		case lhs.Kind == KindVector && rhs.Kind == KindVector && lhs.Row == rhs.Row:
			return Shape{Kind: KindVector, Capacity: min(lhs.Capacity, rhs.Capacity), Row: lhs.Row}, nil
		}
		return incompatible()

	case OpCross:
		if lhs.Kind != KindVector || rhs.Kind != KindVector || lhs.Row || rhs.Row {
			return incompatible()
		}
		return Shape{Kind: KindVector, Capacity: 3}, nil
	}

	return incompatible()
}
