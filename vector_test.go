package hybridvec

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/hupe1980/hybridvec/internal/mem"
	"github.com/hupe1980/hybridvec/lane"
	"github.com/hupe1980/hybridvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type n0 struct{}

func (n0) Bound() int { return 0 }

// assertPadding checks that every slot past the logical size is zero.
func assertPadding[T Scalar, N Bound, O Orientation](t *testing.T, v *Vector[T, N, O]) {
	t.Helper()
	for i := v.size; i < len(v.data); i++ {
		require.Zerof(t, v.data[i], "padding slot %d (size %d) is not zero", i, v.size)
	}
}

func TestNew(t *testing.T) {
	t.Run("within bound", func(t *testing.T) {
		for _, n := range []int{0, 1, 5, 10} {
			v, err := New[float32, N10, Column](n)
			require.NoError(t, err)
			assert.Equal(t, n, v.Size())
			assert.Equal(t, lane.Padded(10, lane.Width[float32]()), v.Capacity())
			assert.Equal(t, v.Capacity(), len(v.data))
			assert.True(t, v.IsAligned())
			assertPadding(t, v)
		}
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		v, err := New[float64, N4, Column](5)
		assert.Nil(t, v)

		var ce *ErrCapacityExceeded
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 5, ce.Requested)
		assert.Equal(t, 4, ce.Limit)
		assert.ErrorIs(t, err, ErrCapacity)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := New[int32, N4, Row](-1)
		assert.ErrorIs(t, err, ErrNegativeSize)
	})

	t.Run("invalid bound", func(t *testing.T) {
		_, err := New[float32, n0, Column](0)
		assert.ErrorIs(t, err, ErrInvalidBound)
	})
}

func TestConstructors(t *testing.T) {
	v, err := NewFilled[int64, N8, Column](5, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7, 7, 7}, v.Data())
	assertPadding(t, v)

	w, err := NewFrom[int64, N8, Column](3, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, w.Data())
	assertPadding(t, w)

	_, err = NewFrom[int64, N8, Column](3, []int64{1})
	assert.ErrorIs(t, err, ErrSize)

	_, err = FromSlice[float32, N2, Row]([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrCapacity)

	_, err = NewFilled[float32, N2, Row](3, 1)
	assert.ErrorIs(t, err, ErrCapacity)

	sum, err := v.Add(v)
	require.NoError(t, err)
	x, err := NewFromExpr[int64, N16, Column](sum)
	require.NoError(t, err)
	assert.Equal(t, []int64{14, 14, 14, 14, 14}, x.Data())
	assertPadding(t, x)

	big, err := NewFilled[int64, N16, Column](12, 1)
	require.NoError(t, err)
	_, err = NewFromExpr[int64, N8, Column](big)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestZeroValue(t *testing.T) {
	var v ColumnVector[float32, N8]

	assert.Equal(t, 0, v.Size())
	assert.Equal(t, lane.Padded(8, lane.Width[float32]()), v.Capacity())
	assert.Empty(t, v.Data())
	assert.True(t, IsDefault(&v))
	assert.Equal(t, "[]", v.String())

	require.NoError(t, v.Resize(3, false))
	v.Set(1, 2.5)
	assert.Equal(t, []float32{0, 2.5, 0}, v.Data())
	assert.True(t, mem.IsAligned(v.data))
	assertPadding(t, &v)
}

func TestResize(t *testing.T) {
	v, err := FromSlice[float64, N10, Column]([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	capacity := v.Capacity()

	require.NoError(t, v.Resize(2, true))
	assert.Equal(t, []float64{1, 2}, v.Data())
	assertPadding(t, v)

	require.NoError(t, v.Resize(10, false))
	assert.Equal(t, 10, v.Size())
	assertPadding(t, v)

	err = v.Resize(11, true)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 10, v.Size())

	assert.ErrorIs(t, v.Resize(-1, true), ErrNegativeSize)

	require.NoError(t, v.Resize(4, true))
	require.NoError(t, v.Extend(3, true))
	assert.Equal(t, 7, v.Size())
	assert.ErrorIs(t, v.Extend(4, true), ErrCapacity)
	require.NoError(t, v.Extend(-7, true))
	assert.Equal(t, 0, v.Size())

	assert.Equal(t, capacity, v.Capacity())
}

func TestExtendOverflow(t *testing.T) {
	v, err := FromSlice[float64, N10, Column]([]float64{1, 2, 3})
	require.NoError(t, err)

	err = v.Extend(math.MaxInt, true)
	var capErr *ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, math.MaxInt, capErr.Requested)
	assert.Equal(t, 10, capErr.Limit)
	assert.NotErrorIs(t, err, ErrNegativeSize)
	assert.Equal(t, []float64{1, 2, 3}, v.Data())

	assert.ErrorIs(t, v.Extend(8, true), ErrCapacity)
	assert.ErrorIs(t, v.Extend(math.MinInt, true), ErrNegativeSize)
}

func TestCopyByValuePanicsOnMutation(t *testing.T) {
	v, err := FromSlice[float32, N8, Column]([]float32{1, 2, 3})
	require.NoError(t, err)

	w := *v
	assert.Panics(t, func() { _ = w.Resize(5, true) })
	assert.Panics(t, func() { w.Set(0, 42) })
	assert.Panics(t, func() { w.Fill(7) })
	assert.Panics(t, func() { _ = w.AssignFrom(v) })
	assert.Equal(t, []float32{1, 2, 3}, v.Data())
	assertPadding(t, v)

	var zero ColumnVector[float32, N8]
	copied := zero
	require.NoError(t, copied.AssignSlice([]float32{4}))
	require.NoError(t, zero.AssignSlice([]float32{5}))
	assert.Equal(t, []float32{4}, copied.Data())
	assert.Equal(t, []float32{5}, zero.Data())

	clone := v.Clone()
	assert.NotPanics(t, func() { clone.Set(0, 9) })
	assert.Equal(t, float32(1), v.At(0))
}

func TestClearAndReset(t *testing.T) {
	v, err := FromSlice[int32, N8, Row]([]int32{3, 0, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, v.NonZeros())

	Reset(v)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 0, v.NonZeros())

	v.Fill(9)
	Clear(v)
	assert.Equal(t, 0, v.Size())
	assert.True(t, IsDefault(v))
	assertPadding(t, v)
}

func TestFillTouchesOnlyLiveElements(t *testing.T) {
	v, err := New[float32, N16, Column](5)
	require.NoError(t, err)

	v.Fill(3)
	assert.Equal(t, []float32{3, 3, 3, 3, 3}, v.Data())
	assertPadding(t, v)
}

func TestDataIsCapped(t *testing.T) {
	v, err := FromSlice[float32, N16, Column]([]float32{1, 2})
	require.NoError(t, err)

	d := v.Data()
	assert.Equal(t, 2, cap(d))
	_ = append(d, 99)
	assertPadding(t, v)

	d[0] = 5
	assert.Equal(t, float32(5), v.At(0))
}

func TestAll(t *testing.T) {
	v, err := FromSlice[int16, N8, Column]([]int16{4, 5, 6})
	require.NoError(t, err)

	var idx []int
	var vals []int16
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []int16{4, 5}, vals)
}

func TestClone(t *testing.T) {
	v, err := FromSlice[float64, N8, Column]([]float64{1, 2, 3})
	require.NoError(t, err)

	c := v.Clone()
	c.Set(0, 100)
	assert.Equal(t, float64(1), v.At(0))
	assert.Equal(t, v.Size(), c.Size())
	assert.NotSame(t, &v.data[0], &c.data[0])
}

func TestSwap(t *testing.T) {
	rng := testutil.NewRNG(11)

	a, err := FromSlice[float32, N16, Column](testutil.Slice[float32](rng, 13))
	require.NoError(t, err)
	b, err := FromSlice[float32, N16, Column](testutil.Slice[float32](rng, 3))
	require.NoError(t, err)

	origA := slices.Clone(a.Data())
	origB := slices.Clone(b.Data())
	viewA := a.Data()

	a.Swap(b)
	assert.Equal(t, origB, a.Data())
	assert.Equal(t, origA, b.Data())
	assertPadding(t, a)
	assertPadding(t, b)

	// views follow the storage, not the contents
	assert.Equal(t, origB[0], viewA[0])

	Swap(a, b)
	assert.Equal(t, origA, a.Data())
	assert.Equal(t, origB, b.Data())

	a.Swap(a)
	assert.Equal(t, origA, a.Data())

	var empty ColumnVector[float32, N16]
	empty.Swap(a)
	assert.Equal(t, origA, empty.Data())
	assert.Equal(t, 0, a.Size())
	assertPadding(t, a)
}

func TestCopyFromAndMove(t *testing.T) {
	src, err := FromSlice[int32, N8, Column]([]int32{1, 2})
	require.NoError(t, err)
	dst, err := FromSlice[int32, N8, Column]([]int32{9, 9, 9, 9, 9})
	require.NoError(t, err)

	dst.CopyFrom(src)
	assert.Equal(t, []int32{1, 2}, dst.Data())
	assertPadding(t, dst)

	other, err := New[int32, N8, Column](0)
	require.NoError(t, err)
	Move(other, dst)
	assert.Equal(t, []int32{1, 2}, other.Data())

	dst.CopyFrom(dst)
	assert.Equal(t, []int32{1, 2}, dst.Data())
}

func TestRoundTripViaSlice(t *testing.T) {
	rng := testutil.NewRNG(5)

	for n := range 18 {
		src := testutil.Slice[float64](rng, n)
		v, err := FromSlice[float64, N16, Column](src)
		if n > 16 {
			assert.ErrorIs(t, err, ErrCapacity)
			continue
		}
		require.NoError(t, err)

		out := make([]float64, 0, n)
		for _, x := range v.All() {
			out = append(out, x)
		}
		assert.Equal(t, src, out)
		assertPadding(t, v)
	}
}

func TestAssignSlice(t *testing.T) {
	v, err := FromSlice[float32, N4, Column]([]float32{1, 2, 3, 4})
	require.NoError(t, err)

	require.NoError(t, v.AssignSlice([]float32{5}))
	assert.Equal(t, []float32{5}, v.Data())
	assertPadding(t, v)

	err = v.AssignSlice([]float32{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, []float32{5}, v.Data())
	assert.True(t, errors.Is(err, ErrCapacity))
}

func TestScale(t *testing.T) {
	v, err := FromSlice[int64, N8, Column]([]int64{1, -2, 3})
	require.NoError(t, err)

	v.Scale(3)
	assert.Equal(t, []int64{3, -6, 9}, v.Data())
	assertPadding(t, v)
}

func TestOrientation(t *testing.T) {
	var c ColumnVector[float32, N3]
	var r RowVector[float32, N3]

	assert.IsType(t, Column{}, c.Orientation())
	assert.IsType(t, Row{}, r.Orientation())
	assert.False(t, isRow[Column]())
	assert.True(t, isRow[Row]())
	assert.Equal(t, 3, c.Bound())
}

func TestUnvectorizableTypeIsUnpadded(t *testing.T) {
	v, err := New[int8, N7, Column](7)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Lanes())
	assert.Equal(t, 7, v.Capacity())
}

func TestLaneAccess(t *testing.T) {
	v, err := newVector[float32, N10, Column](7, 4)
	require.NoError(t, err)
	require.NoError(t, v.AssignSlice([]float32{1, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, 12, v.Capacity())

	tail := v.Load(4)
	assert.Equal(t, 4, tail.Lanes())
	assert.Equal(t, []float32{5, 6, 7, 0}, []float32{tail.At(0), tail.At(1), tail.At(2), tail.At(3)})

	v.Store(0, lane.Broadcast[float32](9, 4))
	assert.Equal(t, []float32{9, 9, 9, 9, 5, 6, 7}, v.Data())

	v.StoreU(2, lane.Load([]float32{1, 1, 1, 1}, 4))
	assert.Equal(t, []float32{9, 9, 1, 1, 1, 1, 7}, v.Data())

	u := v.LoadU(5)
	assert.Equal(t, float32(1), u.At(0))
	assert.Equal(t, float32(7), u.At(1))

	v.Stream(4, lane.Load([]float32{2, 2, 2, 0}, 4))
	assert.Equal(t, []float32{9, 9, 1, 1, 2, 2, 2}, v.Data())
	assertPadding(t, v)
}
