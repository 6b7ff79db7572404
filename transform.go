package dxt

import (
	"fmt"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/bc1"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/bc2"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/bc3"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/bc7"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

// Format identifies a supported block-compressed texture format.
type Format = format.Tag

const (
	BC1 Format = format.BC1
	BC2 Format = format.BC2
	BC3 Format = format.BC3
	BC7 Format = format.BC7
)

// DecorrelationVariant selects a YCoCg-R bit layout (or none) for endpoint
// colour decorrelation.
type DecorrelationVariant = color565.Variant

const (
	DecorrelationNone     DecorrelationVariant = color565.VariantNone
	DecorrelationVariant1 DecorrelationVariant = color565.Variant1
	DecorrelationVariant2 DecorrelationVariant = color565.Variant2
	DecorrelationVariant3 DecorrelationVariant = color565.Variant3
)

// NormalizeMode selects the (BC1-only, experimental) block-canonicalization
// behaviour applied before splitting.
type NormalizeMode = format.NormalizeMode

const (
	NormalizeOff         NormalizeMode = format.NormalizeOff
	NormalizeColorOnly   NormalizeMode = format.NormalizeColorOnly
	NormalizeColorRepeat NormalizeMode = format.NormalizeColorRepeat
)

// Settings is the full record of choices a forward transform applies. The
// zero value is the identity configuration: blocks are still separated
// into colour/index (and, for BC2/BC3, alpha) planes, but no
// decorrelation, endpoint-splitting, or normalization is performed.
type Settings = format.Settings

// blockSize returns f's fixed block size, or 0 for an unrecognised tag.
func blockSize(f Format) int {
	return format.Tag(f).BlockSize()
}

// BlockSize returns f's fixed block size in bytes (8 for BC1, 16 for
// BC2/BC3/BC7), or 0 for an unrecognised tag.
func BlockSize(f Format) int {
	return blockSize(f)
}

// Transform rewrites the interleaved block stream src of format f into dst
// according to settings. len(src) must be a positive multiple of f's block
// size, and dst must be at least as long as src; src and dst must not
// overlap.
func Transform(f Format, src, dst []byte, settings Settings) error {
	if err := checkLengths(f, src, dst); err != nil {
		return err
	}
	switch f {
	case BC1:
		return bc1.Transform(src, dst[:len(src)], settings)
	case BC2:
		return bc2.Transform(src, dst[:len(src)], settings)
	case BC3:
		return bc3.Transform(src, dst[:len(src)], settings)
	case BC7:
		if err := bc7.Transform(src, dst[:len(src)]); err != nil {
			return &FormatNotImplementedError{Tag: format.Tag(f)}
		}
		return nil
	default:
		return fmt.Errorf("dxt: %w", ErrUnknownFileFormat)
	}
}

// Untransform inverts Transform for the same format and settings.
func Untransform(f Format, src, dst []byte, settings Settings) error {
	if err := checkLengths(f, src, dst); err != nil {
		return err
	}
	switch f {
	case BC1:
		return bc1.Untransform(src, dst[:len(src)], settings)
	case BC2:
		return bc2.Untransform(src, dst[:len(src)], settings)
	case BC3:
		return bc3.Untransform(src, dst[:len(src)], settings)
	case BC7:
		if err := bc7.Untransform(src, dst[:len(src)]); err != nil {
			return &FormatNotImplementedError{Tag: format.Tag(f)}
		}
		return nil
	default:
		return fmt.Errorf("dxt: %w", ErrUnknownFileFormat)
	}
}

func checkLengths(f Format, src, dst []byte) error {
	bs := blockSize(f)
	if bs == 0 {
		return fmt.Errorf("dxt: %w", ErrUnknownFileFormat)
	}
	if len(src) == 0 || len(src)%bs != 0 {
		return fmt.Errorf("dxt: %w", ErrInvalidLength)
	}
	if len(dst) < len(src) {
		return &OutputBufferTooSmallError{Required: len(src), Actual: len(dst)}
	}
	return nil
}
