package dsp

import "golang.org/x/sys/cpu"

// applyTierOverrides swaps the unroll-by-1 scalar kernels for wider-unroll
// tiers when the CPU advertises enough work-set to benefit. The teacher
// (internal/dsp/dsp_amd64.go) makes this decision with CPUID-probed
// booleans and real assembly; we have no assembly to dispatch to, so the
// "SIMD tiers" named below are unrolled pure-Go loops gated on the same
// cpu.CPU feature flags the teacher's dispatch would have checked, via
// golang.org/x/sys/cpu rather than a hand-written CPUID routine.
func applyTierOverrides() {
	switch {
	case cpu.X86.HasAVX512F:
		SplitColorsIndices = splitAVX512Tier
		UnsplitColorsIndices = unsplitAVX512Tier
	case cpu.X86.HasAVX2:
		SplitColorsIndices = splitAVX2Tier
		UnsplitColorsIndices = unsplitAVX2Tier
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		SplitColorsIndices = splitSSE2Tier
		UnsplitColorsIndices = unsplitSSE2Tier
	}
}

// Tier unroll factors. Named after the instruction sets whose register
// widths they're sized to emulate the throughput of: 128-bit (SSE2/NEON),
// 256-bit (AVX2), 512-bit (AVX-512).
const (
	sse2Unroll   = 2
	avx2Unroll   = 4
	avx512Unroll = 8
)

func splitSSE2Tier(src, dst []byte)   { splitColorsIndicesUnroll(src, dst, sse2Unroll) }
func unsplitSSE2Tier(src, dst []byte) { unsplitColorsIndicesUnroll(src, dst, sse2Unroll) }

func splitAVX2Tier(src, dst []byte)   { splitColorsIndicesUnroll(src, dst, avx2Unroll) }
func unsplitAVX2Tier(src, dst []byte) { unsplitColorsIndicesUnroll(src, dst, avx2Unroll) }

func splitAVX512Tier(src, dst []byte)   { splitColorsIndicesUnroll(src, dst, avx512Unroll) }
func unsplitAVX512Tier(src, dst []byte) { unsplitColorsIndicesUnroll(src, dst, avx512Unroll) }

// TierName reports which kernel tier is currently wired up, for
// diagnostics.
func TierName() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return "sse2"
	default:
		return "scalar"
	}
}
