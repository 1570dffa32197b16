package simd

import "golang.org/x/sys/cpu"

func init() {
	features = detectFeatures()
	initCapabilities()
}

// detectFeatures reads both feature structs; the one for a foreign
// architecture stays zero.
func detectFeatures() Features {
	return Features{
		ASIMD:    cpu.ARM64.HasASIMD,
		SVE2:     cpu.ARM64.HasSVE2,
		AVX2:     cpu.X86.HasAVX2 && cpu.X86.HasFMA,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
	}
}
