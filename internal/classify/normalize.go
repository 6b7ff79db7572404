package classify

import "github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"

// NormalizeBC1Blocks rewrites each 8-byte block in src to a canonical form
// when doing so would not change its decoded pixels, writing the result to
// dst (src and dst may be the same slice). len(src) must be a multiple of
// 8, and dst must be at least as long as src.
//
// Three cases, in priority order:
//  1. Fully transparent block -> all 0xFF bytes.
//  2. Solid opaque block whose color round-trips cleanly through RGB565 ->
//     color in Color0, Color1 and indices zeroed (or Color1 == Color0 when
//     repeatColor is set).
//  3. Anything else (mixed pixels, or a solid color RGB565 can't represent
//     exactly) -> copied through unchanged.
func NormalizeBC1Blocks(src, dst []byte, repeatColor bool) {
	n := len(src) / 8
	for i := 0; i < n; i++ {
		block := src[i*8 : i*8+8]
		out := dst[i*8 : i*8+8]
		normalizeOneBC1Block(block, out, repeatColor)
	}
}

func normalizeOneBC1Block(block, out []byte, repeatColor bool) {
	px := decodeBC1Block(block)

	if !identicalPixels(px) {
		copyBlock(out, block)
		return
	}

	p := px[0]
	if p.a == 0 {
		for i := range out {
			out[i] = 0xFF
		}
		return
	}

	if !roundTrips(p) {
		copyBlock(out, block)
		return
	}

	c := color565.FromRGB(p.r, p.g, p.b)
	out[0] = byte(c)
	out[1] = byte(c >> 8)
	if repeatColor {
		out[2] = out[0]
		out[3] = out[1]
	} else {
		out[2] = 0
		out[3] = 0
	}
	out[4], out[5], out[6], out[7] = 0, 0, 0, 0
}

func copyBlock(dst, src []byte) {
	// Explicit backward-safe copy: NormalizeBC1Blocks permits src == dst.
	var tmp [8]byte
	copy(tmp[:], src)
	copy(dst, tmp[:])
}
