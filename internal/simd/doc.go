// Package simd detects the SIMD instruction set of the running CPU.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// The active ISA fixes the register width, and the register width fixes the
// number of lanes a lane-blocked kernel processes per step. Detection runs
// once at init via golang.org/x/sys/cpu.
//
// Set HYBRIDVEC_SIMD=generic|neon|sve2|avx2|avx512 to force an ISA (ignored
// if the CPU lacks it). Build with -tags noasm to force Generic.
package simd
