// Package hybridvec provides a dense vector with a fixed capacity and a
// dynamic size.
//
// A Vector[T, N, O] stores up to N elements of T in a single 64-byte aligned
// allocation padded to the SIMD lane width of T. The size can change at run
// time within [0, N]; the storage never grows or moves. O tags the vector as
// a Column or Row vector, and only same-oriented operands combine.
//
// # Quick Start
//
//	v, _ := hybridvec.FromSlice[float32, hybridvec.N8, hybridvec.Column]([]float32{1, 2, 3})
//	w, _ := hybridvec.NewFilled[float32, hybridvec.N8, hybridvec.Column](3, 2)
//
//	sum, _ := v.Add(w)   // lazy
//	_ = v.Assign(sum)    // v = v + w, safe although sum reads v
//	_ = v.MulAssign(v)   // v = v * v
//	v.DivScalar(2)
//
// # Assignment
//
// Assign, AddAssign, SubAssign and MulAssign check sizes before writing and
// buffer any source that may read the destination through a temporary.
// AssignFrom and its siblings are the unchecked primitives underneath: they
// pick the lane-blocked kernel when source and destination share a lane
// width, the element-by-element kernel otherwise, and a dedicated walk over
// explicit entries for sparse sources.
//
// Sparse sources have two distinct semantics. Assigning from a
// SparseVector writes only its explicit entries through AssignFrom, while
// Assign resets the destination first. Multiplying by a SparseVector zeroes
// every element without an explicit entry.
//
// # Errors
//
// Exceeding the capacity bound returns *ErrCapacityExceeded and mismatched
// sizes return *ErrSizeMismatch, always before any element is written.
// Out-of-range indices and division by zero are only checked in builds
// tagged hybriddebug.
//
// # Observability
//
// SetLogger installs a slog-based Logger that reports alias fallbacks and
// rejected operations at debug level. SetMetricsCollector installs a
// MetricsCollector receiving one event per dispatched kernel.
package hybridvec
