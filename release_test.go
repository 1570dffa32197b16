//go:build !hybriddebug

package hybridvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivScalarByZeroIsUncheckedInRelease(t *testing.T) {
	v, err := FromSlice[float64, N4, Column]([]float64{1, -2})
	require.NoError(t, err)

	assert.NotPanics(t, func() { v.DivScalar(0) })
	assert.True(t, math.IsInf(v.At(0), 1))
	assert.True(t, math.IsInf(v.At(1), -1))
	assertPadding(t, v)
}

func TestIndexWithinPaddingIsUncheckedInRelease(t *testing.T) {
	v := laned[float32, N8](t, 4, []float32{1, 2, 3})
	assert.NotPanics(t, func() { assert.Zero(t, v.At(3)) })
}

func TestElementAccessDoesNotAllocateInRelease(t *testing.T) {
	v, err := New[float64, N256, Column](256)
	require.NoError(t, err)

	i := 200
	allocs := testing.AllocsPerRun(100, func() {
		v.Set(i, v.At(i)+1)
	})
	assert.Zero(t, allocs)
	assert.Equal(t, float64(101), v.At(i))
}
