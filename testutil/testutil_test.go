package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	rng := NewRNG(42)

	f := Slice[float64](rng, 100)
	for _, x := range f {
		assert.GreaterOrEqual(t, x, 1.0)
		assert.Less(t, x, 16.0)
		assert.Equal(t, float64(int(x)), x)
	}

	u := Slice[uint32](rng, 50)
	assert.NotContains(t, u, uint32(0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	a := Slice[int32](rng, 20)
	rng.Reset()
	b := Slice[int32](rng, 20)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(7), rng.Seed())
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(1)
	dst := make([]float32, 64)
	rng.FillUniformRange(dst, -1, 1)
	for _, x := range dst {
		assert.GreaterOrEqual(t, x, float32(-1))
		assert.Less(t, x, float32(1))
	}
}

func TestSparsePattern(t *testing.T) {
	rng := NewRNG(3)

	idx := rng.SparsePattern(200, 0.2)
	assert.True(t, slices.IsSorted(idx))
	assert.Equal(t, len(idx), len(slices.Compact(slices.Clone(idx))))
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 200)
	}

	assert.Empty(t, rng.SparsePattern(100, 0))
	assert.Len(t, rng.SparsePattern(10, 1), 10)
}

func TestRaggedSizes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 9}, RaggedSizes(9, 4))
	assert.Equal(t, []int{1, 2, 3}, RaggedSizes(3, 1))
}
