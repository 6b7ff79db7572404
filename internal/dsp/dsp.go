// Package dsp holds the byte-level kernels shared by every block-format
// orchestrator: splitting an interleaved BC1/BC2/BC3 block stream into its
// constituent planes, undoing that split, and batch-applying the color565
// decorrelation across a run of endpoint colors.
//
// It mirrors the teacher's internal/dsp dispatch-table pattern: a set of
// exported function variables wired up by Init(), with tiered
// implementations swapped in based on detected CPU features. This package
// carries no hand-written assembly (none was available to draw from), so
// the "tiers" are pure-Go implementations that trade unroll factor for
// throughput — they are bit-exact by construction, since every tier shares
// the same arithmetic and differs only in how many blocks it processes per
// loop iteration.
package dsp

import "github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"

// SplitColorsIndices separates an interleaved BC1-shaped block stream (each
// block: 4-byte color pair, 4-byte index word) into a colors plane followed
// by an indices plane, both len(src)/2 bytes. len(src) must be a multiple
// of 8 and dst must be the same length as src.
//
// Grounded on shift/shift_unroll_2/4/8 in
// original_source/src/raw/dxt1/transform/portable64.rs.
var SplitColorsIndices func(src, dst []byte)

// UnsplitColorsIndices inverts SplitColorsIndices.
var UnsplitColorsIndices func(src, dst []byte)

// DecorrelateEndpoints applies color565.Decorrelate(v) to every 16-bit
// little-endian color in colors, in place.
var DecorrelateEndpoints func(colors []byte, v color565.Variant)

// RecorrelateEndpoints inverts DecorrelateEndpoints.
var RecorrelateEndpoints func(colors []byte, v color565.Variant)

// Init wires the colour/index split and decorrelation function variables
// to their scalar defaults and then lets tier detection override the ones
// the running CPU supports. SplitEndpoints and UnsplitEndpoints are not
// touched here; endpoints.go's init() sets them once. Safe to call more
// than once; callers get it for free via this package's own init().
func Init() {
	SplitColorsIndices = splitColorsIndicesScalar
	UnsplitColorsIndices = unsplitColorsIndicesScalar
	DecorrelateEndpoints = decorrelateEndpointsScalar
	RecorrelateEndpoints = recorrelateEndpointsScalar

	applyTierOverrides()
}

func init() {
	Init()
}
