// Package prommetrics exports hybridvec assignment metrics to Prometheus.
//
//	c := prommetrics.NewCollector("myapp")
//	prometheus.MustRegister(c)
//	hybridvec.SetMetricsCollector(c)
package prommetrics

import (
	"github.com/hupe1980/hybridvec"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements both hybridvec.MetricsCollector and
// prometheus.Collector.
type Collector struct {
	assigns   *prometheus.CounterVec
	elements  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
	errors    *prometheus.CounterVec
}

var _ hybridvec.MetricsCollector = (*Collector)(nil)
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector whose metric names are prefixed with
// namespace (may be empty).
func NewCollector(namespace string) *Collector {
	return &Collector{
		assigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hybridvec",
			Name:      "assigns_total",
			Help:      "Kernel dispatches by operation and path",
		}, []string{"op", "path"}),
		elements: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "hybridvec",
			Name:      "assign_elements",
			Help:      "Elements written per kernel dispatch",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"path"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hybridvec",
			Name:      "alias_fallbacks_total",
			Help:      "Aliased sources buffered through a temporary",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hybridvec",
			Name:      "errors_total",
			Help:      "Operations rejected by size or capacity checks",
		}, []string{"op"}),
	}
}

// RecordAssign implements hybridvec.MetricsCollector.
func (c *Collector) RecordAssign(op hybridvec.Op, path hybridvec.Path, n int) {
	c.assigns.WithLabelValues(op.String(), path.String()).Inc()
	c.elements.WithLabelValues(path.String()).Observe(float64(n))
}

// RecordAliasFallback implements hybridvec.MetricsCollector.
func (c *Collector) RecordAliasFallback(op hybridvec.Op) {
	c.fallbacks.WithLabelValues(op.String()).Inc()
}

// RecordError implements hybridvec.MetricsCollector.
func (c *Collector) RecordError(op hybridvec.Op, _ error) {
	c.errors.WithLabelValues(op.String()).Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.assigns.Describe(ch)
	c.elements.Describe(ch)
	c.fallbacks.Describe(ch)
	c.errors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.assigns.Collect(ch)
	c.elements.Collect(ch)
	c.fallbacks.Collect(ch)
	c.errors.Collect(ch)
}
