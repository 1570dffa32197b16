package main

import (
	"runtime"

	"github.com/hupe1980/hybridvec"
)

type options struct {
	size       int
	iterations int
	workers    int
	seed       int64
	density    float64
	logger     *hybridvec.Logger
}

// Option configures a benchmark run.
type Option func(*options)

func defaultOptions() options {
	return options{
		size:       1024,
		iterations: 10000,
		workers:    runtime.NumCPU(),
		seed:       42,
		density:    0.1,
		logger:     hybridvec.NoopLogger(),
	}
}

// WithSize sets the element count of every benchmarked vector. It must not
// exceed benchBound.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithIterations sets how many assignments each worker performs per case.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithWorkers sets the number of goroutines running each case. Values below
// one run a single worker.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithSeed seeds the operand generator.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithDensity sets the fraction of explicit entries in the sparse operand.
func WithDensity(d float64) Option {
	return func(o *options) {
		o.density = d
	}
}

// WithLogger routes engine logging during the run. If nil is passed,
// logging is discarded.
func WithLogger(l *hybridvec.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = hybridvec.NoopLogger()
		}
		o.logger = l
	}
}
