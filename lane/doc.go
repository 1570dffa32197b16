// Package lane describes how element types map onto SIMD registers.
//
// A lane is one element slot of a register. The lane width of a type is the
// number of its elements that fit into one register of the active ISA (see
// internal/simd), or 1 when the type is not processed in lanes. Containers
// pad their storage to a multiple of the lane width so that full-lane loads
// and stores never leave the allocation.
//
// Pack is the portable register: Width elements held in go-highway vectors
// (hwy.Vec), split across several of them when the lane is wider than
// hwy.MaxLanes. Kernels iterate in steps of Width.
//
//	w := lane.Width[float32]()
//	for i := 0; i < n; i += w {
//		p := lane.Load(a[i:], w).Add(lane.Load(b[i:], w))
//		p.Store(out[i:])
//	}
package lane
