// Package bc2 implements the BC2 (DXT3) per-format transform
// orchestrator. BC2 blocks are always opaque at the colour sub-block level
// (alpha is stored explicitly, 4 bits per pixel, never via punch-through),
// so the colour sub-block's split/decorrelate pipeline is identical to
// BC1's; only the extra alpha plane is new, and it passes through every
// stage unchanged.
//
// Grounded on dxt-lossless-transform-bc2's split_blocks module for the
// plane layout and on internal/bc1 for the settings-driven orchestration,
// which BC2 reuses verbatim for its colour half.
package bc2

import (
	"errors"
	"fmt"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/alloc"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/dsp"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

// BlockSize is the fixed byte size of one BC2 block: 8 bytes of explicit
// per-pixel alpha followed by an 8-byte BC1-shaped colour/index pair.
const BlockSize = 16

var errInvalidLength = errors.New("input length must be a positive multiple of the block size")

// Transform rewrites the interleaved BC2 block stream src into dst: alpha
// is split out unchanged, and the colour half receives the same optional
// endpoint-split and decorrelation steps as BC1. Normalization is not
// offered for BC2/BC3 in this package: the "solid colour" and "fully
// transparent" canonical forms from the BC1 classifier have no equivalent
// when alpha is explicit per-pixel rather than encoded via punch-through.
func Transform(src, dst []byte, s format.Settings) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return fmt.Errorf("bc2: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc2: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	n := len(src) / BlockSize
	alphaLen := n * 8
	colorLen := n * 4

	dsp.SplitBC2(src, dst)
	colorsOut := dst[alphaLen : alphaLen+colorLen]

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
		return fmt.Errorf("bc2: %w", errInvalidLength)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc2: output buffer is %d bytes, need %d", len(dst), len(src))
	}

	n := len(src) / BlockSize
	alphaLen := n * 8
	colorLen := n * 4

	tmp := append([]byte(nil), src...)
	colorsIn := tmp[alphaLen : alphaLen+colorLen]

	if s.Decorrelation != color565.VariantNone {
		dsp.RecorrelateEndpoints(colorsIn, s.Decorrelation)
	}
	if s.SplitEndpoints {
		unsplit := make([]byte, colorLen)
		dsp.UnsplitEndpoints(colorsIn, unsplit)
		copy(colorsIn, unsplit)
	}

	dsp.UnsplitBC2(tmp, dst)
	return nil
}
