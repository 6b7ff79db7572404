// Package color565 implements the RGB565 color type and the reversible
// YCoCg-R decorrelation used to decorrelate BC1-family endpoint colors
// before entropy coding.
//
// The arithmetic mirrors dxt-lossless-transform-common's color_565 module
// (see original_source/projects/core/dxt-lossless-transform-common/src/color_565/decorrelate.rs):
// every step happens in 5-bit two's-complement space with explicit masking,
// and the three variants differ only in where the residual "low green" bit
// is packed into the output word.
package color565

// Color565 is a 16-bit RGB565 value: 5 bits red, 6 bits green, 5 bits blue.
type Color565 uint16

// FromRGB builds a Color565 from 8-bit channels, truncating to the
// available bit depth (5/6/5).
func FromRGB(r, g, b uint8) Color565 {
	return Color565((uint16(r)>>3)<<11 | (uint16(g)>>2)<<5 | uint16(b)>>3)
}

// RGB expands a Color565 back to 8-bit channels by replicating the high
// bits into the low bits (the standard RGB565->RGB888 expansion).
func (c Color565) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	r = (r5 << 3) | (r5 >> 2)
	g = (g6 << 2) | (g6 >> 4)
	b = (b5 << 3) | (b5 >> 2)
	return
}

// Variant identifies which YCoCg-R bit-layout (or none) is applied to a
// run of RGB565 endpoint colors.
type Variant uint8

const (
	// VariantNone applies no decorrelation; the transform is a memcpy.
	VariantNone Variant = iota
	// Variant1 packs Y(11-15) | Co(6-10) | g_low(5) | Cg(0-4).
	Variant1
	// Variant2 packs g_low(15) | Y(10-14) | Co(5-9) | Cg(0-4).
	Variant2
	// Variant3 packs Y(11-15) | Co(6-10) | Cg(1-5) | g_low(0).
	Variant3
)

// String returns the canonical short name, used in header/debug output.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "None"
	case Variant1:
		return "Variant1"
	case Variant2:
		return "Variant2"
	case Variant3:
		return "Variant3"
	default:
		return "Unknown"
	}
}

// Valid reports whether v is one of the four recognised variants.
func (v Variant) Valid() bool {
	return v <= Variant3
}

const mask5 = 0x1F

// Decorrelate applies the forward YCoCg-R lifting transform for the given
// variant. VariantNone returns c unchanged.
func (c Color565) Decorrelate(v Variant) Color565 {
	switch v {
	case VariantNone:
		return c
	case Variant1:
		return decorrelateVar1(c)
	case Variant2:
		return decorrelateVar2(c)
	case Variant3:
		return decorrelateVar3(c)
	default:
		return c
	}
}

// Recorrelate inverts Decorrelate for the same variant.
func (c Color565) Recorrelate(v Variant) Color565 {
	switch v {
	case VariantNone:
		return c
	case Variant1:
		return recorrelateVar1(c)
	case Variant2:
		return recorrelateVar2(c)
	case Variant3:
		return recorrelateVar3(c)
	default:
		return c
	}
}

// unpack565 splits a raw RGB565 word into its four 5/5/1/5-bit fields
// (red, upper green, low green bit, blue), matching every variant's shared
// extraction step.
func unpack565(raw uint16) (r, g, gLow, b int16) {
	r = int16(raw>>11) & mask5
	g = int16(raw>>6) & mask5
	gLow = int16(raw>>5) & 0x1
	b = int16(raw) & mask5
	return
}

// forwardLift computes the shared YCoCg-R forward steps: Co, t, Cg, Y.
func forwardLift(r, g, b int16) (y, co, cg int16) {
	co = (r - b) & mask5
	t := (b + (co >> 1)) & mask5
	cg = (g - t) & mask5
	y = (t + (cg >> 1)) & mask5
	return
}

// inverseLift computes the shared YCoCg-R inverse steps, recovering r, g, b.
func inverseLift(y, co, cg int16) (r, g, b int16) {
	t := (y - (cg >> 1)) & mask5
	g = (cg + t) & mask5
	b = (t - (co >> 1)) & mask5
	r = (b + co) & mask5
	return
}

func decorrelateVar1(c Color565) Color565 {
	r, g, gLow, b := unpack565(uint16(c))
	y, co, cg := forwardLift(r, g, b)
	return Color565(uint16(y)<<11 | uint16(co)<<6 | uint16(gLow)<<5 | uint16(cg))
}

func recorrelateVar1(c Color565) Color565 {
	y := int16(c>>11) & mask5
	co := int16(c>>6) & mask5
	gLow := int16(c>>5) & 0x1
	cg := int16(c) & mask5
	r, g, b := inverseLift(y, co, cg)
	return Color565(uint16(r)<<11 | uint16(g)<<6 | uint16(gLow)<<5 | uint16(b))
}

func decorrelateVar2(c Color565) Color565 {
	r, g, gLow, b := unpack565(uint16(c))
	y, co, cg := forwardLift(r, g, b)
	return Color565(uint16(gLow)<<15 | uint16(y)<<10 | uint16(co)<<5 | uint16(cg))
}

func recorrelateVar2(c Color565) Color565 {
	gLow := int16(c>>15) & 0x1
	y := int16(c>>10) & mask5
	co := int16(c>>5) & mask5
	cg := int16(c) & mask5
	r, g, b := inverseLift(y, co, cg)
	return Color565(uint16(r)<<11 | uint16(g)<<6 | uint16(gLow)<<5 | uint16(b))
}

func decorrelateVar3(c Color565) Color565 {
	r, g, gLow, b := unpack565(uint16(c))
	y, co, cg := forwardLift(r, g, b)
	return Color565(uint16(y)<<11 | uint16(co)<<6 | uint16(cg)<<1 | uint16(gLow))
}

func recorrelateVar3(c Color565) Color565 {
	y := int16(c>>11) & mask5
	co := int16(c>>6) & mask5
	cg := int16(c>>1) & mask5
	gLow := int16(c) & 0x1
	r, g, b := inverseLift(y, co, cg)
	return Color565(uint16(r)<<11 | uint16(g)<<6 | uint16(gLow)<<5 | uint16(b))
}
