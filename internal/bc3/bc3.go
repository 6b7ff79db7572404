// Package bc3 implements the BC3 (DXT5) per-format transform orchestrator.
// Like BC2, BC3's colour sub-block is always opaque at the block level (its
// alpha is interpolated from two explicit 8-bit endpoints plus a 3bpp
// index field, never via BC1-style punch-through), so the colour pipeline
// is identical to BC1's; the two alpha planes pass through unchanged.
//
// Grounded on the plane layout in
// original_source/projects/dxt-lossless-transform/src/raw/bc3/transform/portable32.rs
// and on internal/bc1's settings-driven orchestration, reused for BC3's
// colour half.
package bc3

import (
	"errors"
	"fmt"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/alloc"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/dsp"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

// BlockSize is the fixed byte size of one BC3 block: 2-byte alpha
// endpoints, 6-byte 3bpp alpha index field, and an 8-byte BC1-shaped
// colour/index pair.
const BlockSize = 16

var errInvalidLength = errors.New("input length must be a positive multiple of the block size")

// Transform rewrites the interleaved BC3 block stream src into dst: both
// alpha planes are split out unchanged, and the colour half receives the
// same optional endpoint-split and decorrelation steps as BC1.
func Transform(src, dst []byte, s format.Settings) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return fmt.Errorf("bc3: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc3: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	n := len(src) / BlockSize
	alphaEndpointsLen := n * 2
	alphaIndicesLen := n * 6
	colorLen := n * 4

	dsp.SplitBC3(src, dst)
	colorsOut := dst[alphaEndpointsLen+alphaIndicesLen : alphaEndpointsLen+alphaIndicesLen+colorLen]

	if !s.SplitEndpoints {
		if s.Decorrelation != color565.VariantNone {
			dsp.DecorrelateEndpoints(colorsOut, s.Decorrelation)
		}
		return nil
	}

	scratch, release := alloc.Get(colorLen)
	defer release()
	copy(scratch, colorsOut)
	dsp.SplitEndpoints(scratch, colorsOut)
	if s.Decorrelation != color565.VariantNone {
		dsp.DecorrelateEndpoints(colorsOut, s.Decorrelation)
	}
	return nil
}

// Untransform inverts Transform for the same settings s.
func Untransform(src, dst []byte, s format.Settings) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return fmt.Errorf("bc3: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc3: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	n := len(src) / BlockSize
	alphaEndpointsLen := n * 2
	alphaIndicesLen := n * 6
	colorLen := n * 4

	tmp := append([]byte(nil), src...)
	colorsIn := tmp[alphaEndpointsLen+alphaIndicesLen : alphaEndpointsLen+alphaIndicesLen+colorLen]

	if s.Decorrelation != color565.VariantNone {
		dsp.RecorrelateEndpoints(colorsIn, s.Decorrelation)
	}
	if s.SplitEndpoints {
		unsplit := make([]byte, colorLen)
		dsp.UnsplitEndpoints(colorsIn, unsplit)
		copy(colorsIn, unsplit)
	}

	dsp.UnsplitBC3(tmp, dst)
	return nil
}
