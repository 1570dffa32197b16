package hybridvec

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// SparseVector holds explicit entries of a vector of fixed size. The index
// set is a roaring bitmap; values are kept in index order, so the value of
// index i sits at its rank in the set.
//
// SparseVector implements SparseExpression and can be assigned to, added
// to, subtracted from or multiplied into a Vector of the same size.
type SparseVector[T Scalar, O Orientation] struct {
	size   int
	index  *roaring.Bitmap
	values []T
}

// NewSparse returns an empty sparse vector of the given size.
func NewSparse[T Scalar, O Orientation](size int) (*SparseVector[T, O], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if size > math.MaxInt32 {
		return nil, &ErrCapacityExceeded{Requested: size, Limit: math.MaxInt32}
	}
	return &SparseVector[T, O]{size: size, index: roaring.New()}, nil
}

// Size returns the logical size, including implicit zeros.
func (s *SparseVector[T, O]) Size() int { return s.size }

// NonZeros returns the number of explicit entries. Entries explicitly set
// to zero are counted.
func (s *SparseVector[T, O]) NonZeros() int { return len(s.values) }

// Set stores x at index i, inserting an entry if needed.
func (s *SparseVector[T, O]) Set(i int, x T) error {
	if i < 0 || i >= s.size {
		return &ErrInvalidIndex{Index: i, Size: s.size}
	}
	key := uint32(i)
	if s.index.Contains(key) {
		s.values[s.index.Rank(key)-1] = x
		return nil
	}
	s.index.Add(key)
	s.values = slices.Insert(s.values, int(s.index.Rank(key)-1), x)
	return nil
}

// At returns the value at index i, zero if i has no entry.
func (s *SparseVector[T, O]) At(i int) T {
	if i < 0 || i >= s.size {
		return 0
	}
	key := uint32(i)
	if !s.index.Contains(key) {
		return 0
	}
	return s.values[s.index.Rank(key)-1]
}

// Erase removes the entry at index i, if any.
func (s *SparseVector[T, O]) Erase(i int) {
	if i < 0 || i >= s.size {
		return
	}
	key := uint32(i)
	if !s.index.Contains(key) {
		return
	}
	pos := int(s.index.Rank(key) - 1)
	s.index.Remove(key)
	s.values = slices.Delete(s.values, pos, pos+1)
}

// Reset removes all entries.
func (s *SparseVector[T, O]) Reset() {
	s.index.Clear()
	s.values = s.values[:0]
}

// All yields the explicit entries in increasing index order.
func (s *SparseVector[T, O]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := s.index.Iterator()
		for k := 0; it.HasNext(); k++ {
			if !yield(int(it.Next()), s.values[k]) {
				return
			}
		}
	}
}

func (s *SparseVector[T, O]) CanAlias(target any) bool { return target == any(s) }

func (s *SparseVector[T, O]) IsAliased(target any) bool { return target == any(s) }

func (s *SparseVector[T, O]) Orientation() O {
	var o O
	return o
}
