package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints ISA diagnostics so CI logs show which lane width is in use.
func TestMain(m *testing.M) {
	isa := ActiveISA()
	fmt.Printf("--- simd: %s/%s, %s=%q\n", runtime.GOOS, runtime.GOARCH, EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("--- simd: active %s (overridden %v), %d-byte registers\n", isa, IsOverridden(), isa.RegisterBytes())
	if reg := isa.RegisterBytes(); reg > 0 {
		fmt.Printf("--- simd: lanes float32=%d float64=%d\n", reg/4, reg/8)
	}
	fmt.Printf("--- simd: features %+v\n\n", Detected())

	os.Exit(m.Run())
}
