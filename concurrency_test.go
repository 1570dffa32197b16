package hybridvec

import (
	"testing"

	"github.com/hupe1980/hybridvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(77)
	v, err := FromSlice[float32, N128, Column](testutil.Slice[float32](rng, 100))
	require.NoError(t, err)
	want := v.Clone()

	var g errgroup.Group
	results := make([]*Vector[float32, N128, Column], 8)
	for k := range results {
		g.Go(func() error {
			dst, err := New[float32, N128, Column](v.Size())
			if err != nil {
				return err
			}
			sum, err := v.Add(v)
			if err != nil {
				return err
			}
			if err := dst.Assign(sum); err != nil {
				return err
			}
			results[k] = dst
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		for i := range want.Size() {
			assert.Equal(t, 2*want.At(i), r.At(i))
		}
	}
	assert.Equal(t, want.Data(), v.Data())
}
