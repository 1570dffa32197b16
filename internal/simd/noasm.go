//go:build noasm

package simd

const noASM = true
