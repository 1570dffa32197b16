package hybridvec

import (
	"sync/atomic"
)

// Path identifies the kernel an assignment was dispatched to.
type Path uint8

const (
	// PathScalar is the element-by-element kernel.
	PathScalar Path = iota
	// PathVectorized is the lane-blocked kernel.
	PathVectorized
	// PathSparse walks the explicit entries of a sparse source.
	PathSparse
)

func (p Path) String() string {
	switch p {
	case PathScalar:
		return "scalar"
	case PathVectorized:
		return "vectorized"
	case PathSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// MetricsCollector receives assignment engine events.
// Implement this interface to integrate with monitoring systems; see the
// prommetrics package for a Prometheus implementation.
//
// Calls happen on the mutating goroutine, once per operation (never per
// element), so implementations must be cheap and safe for concurrent use.
type MetricsCollector interface {
	// RecordAssign is called after a kernel wrote n elements.
	RecordAssign(op Op, path Path, n int)

	// RecordAliasFallback is called when an aliased source is buffered
	// through a temporary.
	RecordAliasFallback(op Op)

	// RecordError is called when an operation is rejected before writing.
	RecordError(op Op, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAssign(Op, Path, int) {}
func (NoopMetricsCollector) RecordAliasFallback(Op)     {}
func (NoopMetricsCollector) RecordError(Op, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ScalarAssigns     atomic.Int64
	VectorizedAssigns atomic.Int64
	SparseAssigns     atomic.Int64
	Elements          atomic.Int64
	AliasFallbacks    atomic.Int64
	Errors            atomic.Int64
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(_ Op, path Path, n int) {
	switch path {
	case PathScalar:
		b.ScalarAssigns.Add(1)
	case PathVectorized:
		b.VectorizedAssigns.Add(1)
	case PathSparse:
		b.SparseAssigns.Add(1)
	}
	b.Elements.Add(int64(n))
}

// RecordAliasFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAliasFallback(Op) {
	b.AliasFallbacks.Add(1)
}

// RecordError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordError(Op, error) {
	b.Errors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScalarAssigns:     b.ScalarAssigns.Load(),
		VectorizedAssigns: b.VectorizedAssigns.Load(),
		SparseAssigns:     b.SparseAssigns.Load(),
		Elements:          b.Elements.Load(),
		AliasFallbacks:    b.AliasFallbacks.Load(),
		Errors:            b.Errors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ScalarAssigns     int64
	VectorizedAssigns int64
	SparseAssigns     int64
	Elements          int64
	AliasFallbacks    int64
	Errors            int64
}

type collectorBox struct {
	c MetricsCollector
}

var collector atomic.Pointer[collectorBox]

func init() {
	collector.Store(&collectorBox{c: NoopMetricsCollector{}})
}

// SetMetricsCollector installs the package metrics collector. A nil
// collector disables collection.
func SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = NoopMetricsCollector{}
	}
	collector.Store(&collectorBox{c: c})
}

func metrics() MetricsCollector {
	return collector.Load().c
}

// reject records and logs a failed precondition and returns err.
func reject(op Op, err error) error {
	metrics().RecordError(op, err)
	logger.Load().LogRejected(op, err)
	return err
}
