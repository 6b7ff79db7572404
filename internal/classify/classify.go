// Package classify decodes BC1 blocks well enough to tell whether a block
// is solid-colored, fully transparent, or mixed, and rewrites fully
// transparent blocks, and solid blocks whose colour round-trips through
// RGB565, to a canonical binary form. This canonicalization (normalization)
// never changes the decoded pixels, only which of several binary
// encodings of "the same picture" a block uses — so it shrinks entropy
// for downstream compressors without being visually lossy.
//
// Grounded on original_source/projects/dxt-lossless-transform-bc1/src/normalize_blocks/mod.rs,
// with the block decode step adapted from the reference BC1 decoder in
// other_examples/60688933_WoozyMasta-imageset-packer (internal/bcn/bc1.go).
package classify

import "github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"

// rgba is a decoded BC1 texel; kept internal since callers only need the
// block-level classification, not per-pixel access.
type rgba struct {
	r, g, b, a uint8
}

// decodeBC1Block decodes one 8-byte BC1 block to its 16 texels, including
// the punch-through-alpha interpretation used when color0 <= color1.
func decodeBC1Block(block []byte) [16]rgba {
	raw0 := uint16(block[0]) | uint16(block[1])<<8
	raw1 := uint16(block[2]) | uint16(block[3])<<8
	indices := uint32(block[4]) | uint32(block[5])<<8 | uint32(block[6])<<16 | uint32(block[7])<<24

	c0 := color565.Color565(raw0)
	c1 := color565.Color565(raw1)
	alphaMode := raw0 <= raw1

	r0, g0, b0 := c0.RGB()
	r1, g1, b1 := c1.RGB()

	var ref [4]rgba
	ref[0] = rgba{r0, g0, b0, 0xFF}
	ref[1] = rgba{r1, g1, b1, 0xFF}
	if alphaMode {
		ref[2] = rgba{avg(r0, r1), avg(g0, g1), avg(b0, b1), 0xFF}
		ref[3] = rgba{0, 0, 0, 0}
	} else {
		ref[2] = rgba{mix2to1(r0, r1), mix2to1(g0, g1), mix2to1(b0, b1), 0xFF}
		ref[3] = rgba{mix2to1(r1, r0), mix2to1(g1, g0), mix2to1(b1, b0), 0xFF}
	}

	var out [16]rgba
	for i := 0; i < 16; i++ {
		idx := (indices >> uint(i*2)) & 0x3
		out[i] = ref[idx]
	}
	return out
}

func avg(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

// mix2to1 computes round((2*a + b) / 3), the weighted interpolation BC1
// uses for its third and fourth reference colors in opaque mode.
func mix2to1(a, b uint8) uint8 {
	return uint8((2*uint16(a) + uint16(b) + 1) / 3)
}

func identicalPixels(px [16]rgba) bool {
	first := px[0]
	for _, p := range px[1:] {
		if p != first {
			return false
		}
	}
	return true
}

// roundTrips reports whether an 8-bit opaque color survives an RGB565
// encode/decode cycle unchanged — the condition normalize_blocks.rs checks
// before collapsing a solid block to its canonical form.
func roundTrips(p rgba) bool {
	c := color565.FromRGB(p.r, p.g, p.b)
	r, g, b := c.RGB()
	return r == p.r && g == p.g && b == p.b
}
