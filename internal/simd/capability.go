package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that forces a specific ISA.
const EnvOverride = "HYBRIDVEC_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// isaInfo is indexed by ISA. SVE2 reports its architectural minimum of
// 128 bits.
var isaInfo = [...]struct {
	name string
	reg  int
}{
	Generic: {"generic", 0},
	NEON:    {"neon", 16},
	SVE2:    {"sve2", 16},
	AVX2:    {"avx2", 32},
	AVX512:  {"avx512", 64},
}

func (i ISA) String() string {
	if int(i) >= len(isaInfo) {
		return "unknown"
	}
	return isaInfo[i].name
}

// RegisterBytes returns the width of one SIMD register in bytes, or 0 for
// Generic and unknown values.
func (i ISA) RegisterBytes() int {
	if int(i) >= len(isaInfo) {
		return 0
	}
	return isaInfo[i].reg
}

// ParseISA parses a case-insensitive ISA name.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, isa := range All() {
		if isaInfo[isa].name == s {
			return isa, true
		}
	}
	return Generic, false
}

// All lists every ISA in ascending register width.
func All() []ISA {
	return []ISA{Generic, NEON, SVE2, AVX2, AVX512}
}

// Features is the set of CPU capabilities relevant to ISA selection.
type Features struct {
	ASIMD    bool // ARM64 NEON
	SVE2     bool // ARM64 SVE2
	AVX2     bool // x86-64 AVX2 + FMA
	AVX512F  bool // x86-64 AVX-512 Foundation
	AVX512BW bool // x86-64 AVX-512 Byte/Word
}

// Supports reports whether isa can run with f.
func (f Features) Supports(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return f.ASIMD
	case SVE2:
		return f.SVE2
	case AVX2:
		return f.AVX2
	case AVX512:
		return f.AVX512F && f.AVX512BW
	default:
		return false
	}
}

// Best returns the widest supported ISA for the given platform. Apple's
// SVE2 is emulated, so NEON wins on darwin.
func (f Features) Best(goos, goarch string) ISA {
	switch goarch {
	case "arm64":
		if f.SVE2 && goos != "darwin" {
			return SVE2
		}
		if f.ASIMD {
			return NEON
		}
	case "amd64":
		if f.Supports(AVX512) {
			return AVX512
		}
		if f.AVX2 {
			return AVX2
		}
	}
	return Generic
}

var (
	features    Features
	activeISA   ISA
	hasOverride bool
)

// selectISA picks the active ISA once features are detected. An invalid
// or unavailable override falls through to auto-detection.
func selectISA(f Features, override string, disabled bool) (ISA, bool) {
	if disabled {
		return Generic, false
	}
	if override != "" {
		if forced, ok := ParseISA(override); ok && f.Supports(forced) {
			return forced, true
		}
	}
	return f.Best(runtime.GOOS, runtime.GOARCH), false
}

func initCapabilities() {
	activeISA, hasOverride = selectISA(features, os.Getenv(EnvOverride), noASM)
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// RegisterBytes returns the register width of the active ISA.
func RegisterBytes() int {
	return activeISA.RegisterBytes()
}

// IsOverridden returns true if HYBRIDVEC_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// Detected returns the CPU features found at init.
func Detected() Features {
	return features
}
