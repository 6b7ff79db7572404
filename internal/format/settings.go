package format

import "github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"

// NormalizeMode selects the (experimental) block-normalization behaviour
// applied before splitting. Only the BC1 orchestrator applies it; the BC2
// and BC3 orchestrators ignore it and leave every block's bytes as they are.
type NormalizeMode uint8

const (
	// NormalizeOff disables the classifier/normalizer pass entirely.
	NormalizeOff NormalizeMode = iota
	// NormalizeColorOnly rewrites solid/transparent color sub-blocks to
	// their canonical form, leaving color0==color1 untouched otherwise.
	NormalizeColorOnly
	// NormalizeColorRepeat is NormalizeColorOnly but with the "repeat"
	// flag set: solid blocks get color0==color1==C instead of color1=0.
	NormalizeColorRepeat
)

// Settings is the total record of choices applied by a forward transform.
// The zero value — {Decorrelation: VariantNone, SplitEndpoints: false,
// Normalize: NormalizeOff} — is the identity configuration: no optional
// step runs, but the per-format orchestrators still separate each block
// into its colour/index (and alpha) planes, so the output is not a memcpy
// of the input.
type Settings struct {
	Decorrelation  color565.Variant
	SplitEndpoints bool
	Normalize      NormalizeMode
}

// IsIdentity reports whether s selects none of the optional steps
// (decorrelation, endpoint-splitting, normalization).
func (s Settings) IsIdentity() bool {
	return s.Decorrelation == color565.VariantNone && !s.SplitEndpoints && s.Normalize == NormalizeOff
}
