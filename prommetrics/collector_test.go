package prommetrics

import (
	"strings"
	"testing"

	"github.com/hupe1980/hybridvec"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsEngineEvents(t *testing.T) {
	c := NewCollector("test")
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	hybridvec.SetMetricsCollector(c)
	t.Cleanup(func() { hybridvec.SetMetricsCollector(nil) })

	v, err := hybridvec.FromSlice[float32, hybridvec.N8, hybridvec.Column]([]float32{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, v.MulAssign(v))
	assert.Error(t, v.Resize(9, true))

	s, err := hybridvec.NewSparse[float32, hybridvec.Column](3)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 2))
	require.NoError(t, v.AddAssignFrom(s))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.fallbacks.WithLabelValues("mul")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("assign")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.assigns.WithLabelValues("add", "sparse")))

	expected := `
# HELP test_hybridvec_alias_fallbacks_total Aliased sources buffered through a temporary
# TYPE test_hybridvec_alias_fallbacks_total counter
test_hybridvec_alias_fallbacks_total{op="mul"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_hybridvec_alias_fallbacks_total"))
}

func TestCollectorDescribe(t *testing.T) {
	c := NewCollector("")
	c.RecordAssign(hybridvec.OpAssign, hybridvec.PathVectorized, 16)
	c.RecordAssign(hybridvec.OpAssign, hybridvec.PathScalar, 3)

	assert.Equal(t, 4, testutil.CollectAndCount(c))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.assigns.WithLabelValues("assign", "vectorized"))+
		testutil.ToFloat64(c.assigns.WithLabelValues("assign", "scalar")))
}
