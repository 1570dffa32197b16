package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hybridvec"
	"github.com/hupe1980/hybridvec/internal/simd"
	"github.com/hupe1980/hybridvec/lane"
	"github.com/hupe1980/hybridvec/testutil"
)

// benchBound caps the vectors used by the bench command.
type benchBound struct{}

func (benchBound) Bound() int { return 1 << 16 }

type benchVector[T hybridvec.Scalar] = hybridvec.ColumnVector[T, benchBound]

// benchResult is the timing of one case.
type benchResult struct {
	name    string
	path    string
	elapsed time.Duration
	ops     int
}

func (r benchResult) nsPerOp() float64 {
	if r.ops == 0 {
		return 0
	}
	return float64(r.elapsed.Nanoseconds()) / float64(r.ops)
}

func newBenchCmd() *cobra.Command {
	var (
		elem    string
		size    int
		iters   int
		workers int
		seed    int64
		density float64
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the assignment paths",
		Long: `Time dense, aliased and sparse assignments against a plain slice loop and
report which dispatch path each case took.

Example:
  hybridvec bench --type float64 --size 4099 --iterations 20000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []Option{
				WithSize(size),
				WithIterations(iters),
				WithWorkers(workers),
				WithSeed(seed),
				WithDensity(density),
			}
			if verbose {
				opts = append(opts, WithLogger(hybridvec.NewTextLogger(slog.LevelDebug)))
			}
			switch elem {
			case "float32":
				return runBench[float32](cmd.OutOrStdout(), opts...)
			case "float64":
				return runBench[float64](cmd.OutOrStdout(), opts...)
			case "int32":
				return runBench[int32](cmd.OutOrStdout(), opts...)
			case "int64":
				return runBench[int64](cmd.OutOrStdout(), opts...)
			default:
				return fmt.Errorf("unsupported element type %q", elem)
			}
		},
	}

	d := defaultOptions()
	cmd.Flags().StringVarP(&elem, "type", "t", "float32", "Element type (float32, float64, int32, int64)")
	cmd.Flags().IntVarP(&size, "size", "n", d.size, "Elements per vector")
	cmd.Flags().IntVarP(&iters, "iterations", "i", d.iterations, "Assignments per worker and case")
	cmd.Flags().IntVarP(&workers, "workers", "w", d.workers, "Concurrent workers per case")
	cmd.Flags().Int64Var(&seed, "seed", d.seed, "Operand generator seed")
	cmd.Flags().Float64Var(&density, "density", d.density, "Fraction of explicit entries in the sparse operand")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log alias fallbacks at debug level")

	return cmd
}

// benchCase builds per-worker state and returns the loop body.
type benchCase[T hybridvec.Scalar] struct {
	name  string
	setup func(a, b *benchVector[T], s *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error)
}

func benchCases[T hybridvec.Scalar]() []benchCase[T] {
	return []benchCase[T]{
		{"slice loop", func(a, b *benchVector[T], _ *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error) {
			x, y := a.Data(), b.Data()
			dst := make([]T, len(x))
			return func() error {
				for i := range dst {
					dst[i] = x[i] + y[i]
				}
				return nil
			}, nil
		}},
		{"v = a + b", func(a, b *benchVector[T], _ *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error) {
			v := &benchVector[T]{}
			e, err := a.Add(b)
			if err != nil {
				return nil, err
			}
			return func() error { return v.Assign(e) }, nil
		}},
		{"v += a", func(a, _ *benchVector[T], _ *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error) {
			v, err := hybridvec.New[T, benchBound, hybridvec.Column](a.Size())
			if err != nil {
				return nil, err
			}
			return func() error { return v.AddAssign(a) }, nil
		}},
		{"v = v * v", func(a, _ *benchVector[T], _ *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error) {
			v := a.Clone()
			e, err := v.Mul(v)
			if err != nil {
				return nil, err
			}
			return func() error {
				v.Fill(1)
				return v.Assign(e)
			}, nil
		}},
		{"v = sparse", func(_, _ *benchVector[T], s *hybridvec.SparseVector[T, hybridvec.Column]) (func() error, error) {
			v := &benchVector[T]{}
			return func() error { return v.Assign(s) }, nil
		}},
	}
}

func runBench[T hybridvec.Scalar](w io.Writer, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size < 0 || o.size > (benchBound{}).Bound() {
		return fmt.Errorf("size %d outside [0, %d]", o.size, (benchBound{}).Bound())
	}

	prevLogger := hybridvec.DefaultLogger()
	hybridvec.SetLogger(o.logger)
	defer hybridvec.SetLogger(prevLogger)

	rng := testutil.NewRNG(o.seed)
	a, err := hybridvec.FromSlice[T, benchBound, hybridvec.Column](testutil.Slice[T](rng, o.size))
	if err != nil {
		return err
	}
	b, err := hybridvec.FromSlice[T, benchBound, hybridvec.Column](testutil.Slice[T](rng, o.size))
	if err != nil {
		return err
	}
	s, err := hybridvec.NewSparse[T, hybridvec.Column](o.size)
	if err != nil {
		return err
	}
	for _, i := range rng.SparsePattern(o.size, o.density) {
		if err := s.Set(i, a.At(i)); err != nil {
			return err
		}
	}

	width := lane.Width[T]()
	fmt.Fprintf(w, "ISA %s, %d lanes of %d-byte elements, size %d (padded %d), %d workers\n\n",
		simd.ActiveISA(), width, lane.Size[T](), o.size, lane.Padded(o.size, width), o.workers)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tPATH\tNS/OP\tFALLBACKS")
	for _, bc := range benchCases[T]() {
		stats := &hybridvec.BasicMetricsCollector{}
		hybridvec.SetMetricsCollector(stats)
		res, err := runCase(bc, a, b, s, o)
		hybridvec.SetMetricsCollector(nil)
		if err != nil {
			return fmt.Errorf("%s: %w", bc.name, err)
		}
		st := stats.GetStats()
		res.path = dominantPath(st)
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d\n", res.name, res.path, res.nsPerOp(), st.AliasFallbacks)
	}
	return tw.Flush()
}

func runCase[T hybridvec.Scalar](bc benchCase[T], a, b *benchVector[T], s *hybridvec.SparseVector[T, hybridvec.Column], o options) (benchResult, error) {
	bodies := make([]func() error, o.workers)
	for i := range bodies {
		body, err := bc.setup(a, b, s)
		if err != nil {
			return benchResult{}, err
		}
		bodies[i] = body
	}

	start := time.Now()
	var g errgroup.Group
	for _, body := range bodies {
		g.Go(func() error {
			for range o.iterations {
				if err := body(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}

	return benchResult{
		name:    bc.name,
		elapsed: time.Since(start),
		ops:     o.iterations * o.workers,
	}, nil
}

func dominantPath(st hybridvec.BasicMetricsStats) string {
	switch {
	case st.ScalarAssigns+st.VectorizedAssigns+st.SparseAssigns == 0:
		return "-"
	case st.SparseAssigns >= st.VectorizedAssigns && st.SparseAssigns >= st.ScalarAssigns:
		return hybridvec.PathSparse.String()
	case st.VectorizedAssigns >= st.ScalarAssigns:
		return hybridvec.PathVectorized.String()
	default:
		return hybridvec.PathScalar.String()
	}
}
