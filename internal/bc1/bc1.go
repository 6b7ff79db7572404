// Package bc1 implements the BC1 (DXT1) per-format transform orchestrator:
// composing the byte-shuffle, decorrelation, endpoint-split, and
// normalization primitives in the order a TransformSettings record
// dictates, and their mirror order on the way back.
//
// Grounded on the branching table in the specification's "per-format
// transform orchestrator" section and on
// original_source/projects/core/dxt-lossless-transform-bc1/src/lib.rs's
// transform_bc1_with_settings dispatcher.
package bc1

import (
	"errors"
	"fmt"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/alloc"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/classify"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/dsp"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

// BlockSize is the fixed byte size of one BC1 block: a 4-byte RGB565 color
// pair followed by a 4-byte 2-bit-per-pixel index word.
const BlockSize = 8

var errInvalidLength = errors.New("input length must be a positive multiple of the block size")

// Transform rewrites the interleaved BC1 block stream src into dst
// according to s: colors and indices are always separated into two
// halves; within the color half, normalization (if requested) runs first
// (it needs the paired index word to decode each block), then optional
// endpoint-splitting, then optional decorrelation. len(src) must be a
// positive multiple of BlockSize, and dst must be the same length.
func Transform(src, dst []byte, s format.Settings) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return fmt.Errorf("bc1: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc1: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	half := len(src) / 2
	indicesOut := dst[half:]

	if !s.SplitEndpoints {
		// (_, false, _): one pass, colour half stays colour0/colour1
		// interleaved per block.
		colorsOut := dst[:half]
		dsp.SplitColorsIndices(src, dst)
		normalizeInPlace(colorsOut, indicesOut, s.Normalize)
		if s.Decorrelation != color565.VariantNone {
			dsp.DecorrelateEndpoints(colorsOut, s.Decorrelation)
		}
		return nil
	}

	// (_, true, _): route colours through scratch so endpoint-splitting
	// can write directly into the final colour half.
	colorScratch, release := alloc.Get(half)
	defer release()

	splitToScratch(src, colorScratch, indicesOut)
	normalizeInPlace(colorScratch, indicesOut, s.Normalize)

	colorsOut := dst[:half]
	dsp.SplitEndpoints(colorScratch, colorsOut)
	if s.Decorrelation != color565.VariantNone {
		dsp.DecorrelateEndpoints(colorsOut, s.Decorrelation)
	}
	return nil
}

// Untransform inverts Transform for the same settings s. Normalization
// needs no inverse step: it only ever rewrites a block to a different
// binary encoding of the same decoded pixels, so the normalized block
// stream decodes identically to the original and there is nothing further
// to undo (see internal/classify's package doc).
func Untransform(src, dst []byte, s format.Settings) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return fmt.Errorf("bc1: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc1: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	half := len(src) / 2
	colorsIn := append([]byte(nil), src[:half]...)
	indicesIn := src[half:]

	if s.Decorrelation != color565.VariantNone {
		dsp.RecorrelateEndpoints(colorsIn, s.Decorrelation)
	}

	colorHalf := colorsIn
	if s.SplitEndpoints {
		unsplit := make([]byte, half)
		dsp.UnsplitEndpoints(colorsIn, unsplit)
		colorHalf = unsplit
	}

	tmp := make([]byte, len(src))
	copy(tmp[:half], colorHalf)
	copy(tmp[half:], indicesIn)
	dsp.UnsplitColorsIndices(tmp, dst)
	return nil
}

// normalizeInPlace rewrites the split colour/index halves block-by-block
// to their canonical form. colorHalf holds each block's interleaved
// colour0/colour1 pair at colorHalf[i*4:i*4+4]; this layout is shared by
// both the split-endpoints and non-split forward paths at the point
// normalization runs (it always happens before endpoint-splitting, since
// that is the cheapest point per the orchestrator's ordering rule).
func normalizeInPlace(colorHalf, indexHalf []byte, mode format.NormalizeMode) {
	if mode == format.NormalizeOff {
		return
	}
	repeat := mode == format.NormalizeColorRepeat
	n := len(colorHalf) / 4
	var block [8]byte
	for i := 0; i < n; i++ {
		copy(block[0:4], colorHalf[i*4:i*4+4])
		copy(block[4:8], indexHalf[i*4:i*4+4])
		classify.NormalizeBC1Blocks(block[:], block[:], repeat)
		copy(colorHalf[i*4:i*4+4], block[0:4])
		copy(indexHalf[i*4:i*4+4], block[4:8])
	}
}

func splitToScratch(src, colorsScratch, indicesOut []byte) {
	n := len(src) / BlockSize
	for i := 0; i < n; i++ {
		block := src[i*BlockSize : i*BlockSize+BlockSize]
		copy(colorsScratch[i*4:i*4+4], block[0:4])
		copy(indicesOut[i*4:i*4+4], block[4:8])
	}
}
