package simd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{"NEON", NEON, true},
		{" sve2 ", SVE2, true},
		{"avx2", AVX2, true},
		{"AVX512", AVX512, true},
		{"sse4", Generic, false},
		{"", Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseISA(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISAString(t *testing.T) {
	for _, isa := range All() {
		parsed, ok := ParseISA(isa.String())
		require.True(t, ok)
		assert.Equal(t, isa, parsed)
	}
	assert.Equal(t, "unknown", ISA(42).String())
}

func TestRegisterBytes(t *testing.T) {
	assert.Equal(t, 0, Generic.RegisterBytes())
	assert.Equal(t, 16, NEON.RegisterBytes())
	assert.Equal(t, 16, SVE2.RegisterBytes())
	assert.Equal(t, 32, AVX2.RegisterBytes())
	assert.Equal(t, 64, AVX512.RegisterBytes())
	assert.Equal(t, ActiveISA().RegisterBytes(), RegisterBytes())
}

func TestActiveISAIsSupported(t *testing.T) {
	assert.True(t, Detected().Supports(ActiveISA()))
	if noASM {
		assert.Equal(t, Generic, ActiveISA())
	}
}

func TestDetectFeaturesMatchesArch(t *testing.T) {
	f := detectFeatures()
	assert.Equal(t, Detected(), f)
	switch runtime.GOARCH {
	case "amd64":
		assert.False(t, f.ASIMD)
		assert.False(t, f.SVE2)
	case "arm64":
		assert.False(t, f.AVX2)
		assert.False(t, f.AVX512F)
	default:
		assert.Equal(t, Generic, f.Best(runtime.GOOS, runtime.GOARCH))
	}
}

func TestFeaturesBest(t *testing.T) {
	x86 := Features{AVX2: true, AVX512F: true, AVX512BW: true}
	arm := Features{ASIMD: true, SVE2: true}

	tests := []struct {
		name   string
		f      Features
		goos   string
		goarch string
		want   ISA
	}{
		{"avx512", x86, "linux", "amd64", AVX512},
		{"avx512 needs bw", Features{AVX2: true, AVX512F: true}, "linux", "amd64", AVX2},
		{"no x86 features", Features{}, "linux", "amd64", Generic},
		{"sve2", arm, "linux", "arm64", SVE2},
		{"darwin prefers neon", arm, "darwin", "arm64", NEON},
		{"neon only", Features{ASIMD: true}, "linux", "arm64", NEON},
		{"foreign arch", x86, "linux", "riscv64", Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Best(tt.goos, tt.goarch))
		})
	}
}

func TestSelectISA(t *testing.T) {
	f := Features{AVX2: true}

	isa, overridden := selectISA(f, "generic", false)
	assert.Equal(t, Generic, isa)
	assert.True(t, overridden)

	isa, overridden = selectISA(f, "avx512", false)
	assert.Equal(t, f.Best(runtime.GOOS, runtime.GOARCH), isa)
	assert.False(t, overridden)

	isa, overridden = selectISA(f, "bogus", false)
	assert.Equal(t, f.Best(runtime.GOOS, runtime.GOARCH), isa)
	assert.False(t, overridden)

	isa, overridden = selectISA(f, "avx2", true)
	assert.Equal(t, Generic, isa)
	assert.False(t, overridden)
}
