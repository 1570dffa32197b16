// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for lane-blocked vector storage
// (AVX-512 friendly). Element types must be pointer-free.
package mem
