package hybridvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity matches every *ErrCapacityExceeded via errors.Is.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrSize matches every *ErrSizeMismatch via errors.Is.
	ErrSize = errors.New("size mismatch")

	// ErrNegativeSize is returned when a size or resize target is below zero.
	ErrNegativeSize = errors.New("negative size")

	// ErrInvalidBound is returned when a capacity type reports a bound below one.
	ErrInvalidBound = errors.New("capacity bound must be at least 1")

	// ErrUnsupportedExpression is returned when a source is neither dense nor sparse.
	ErrUnsupportedExpression = errors.New("unsupported expression")

	// ErrIncompatibleOperands is returned by Resolve when no result shape
	// exists for an operation, and when decoding into a vector of the wrong
	// orientation.
	ErrIncompatibleOperands = errors.New("incompatible operands")
)

// ErrCapacityExceeded indicates a requested size larger than the vector's
// capacity bound.
type ErrCapacityExceeded struct {
	Requested int
	Limit     int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: requested size %d, limit %d", e.Requested, e.Limit)
}

// Is reports ErrCapacity as a match.
func (e *ErrCapacityExceeded) Is(target error) bool { return target == ErrCapacity }

// ErrSizeMismatch indicates operands whose sizes must agree but do not.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is reports ErrSize as a match.
func (e *ErrSizeMismatch) Is(target error) bool { return target == ErrSize }

// ErrInvalidIndex indicates an index outside [0, Size).
type ErrInvalidIndex struct {
	Index int
	Size  int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index %d for size %d", e.Index, e.Size)
}

func checkSize(n, limit int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n > limit {
		return &ErrCapacityExceeded{Requested: n, Limit: limit}
	}
	return nil
}
