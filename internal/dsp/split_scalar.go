package dsp

import (
	"encoding/binary"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
)

// splitColorsIndicesScalar is the one-block-at-a-time reference
// implementation, equivalent to portable64.rs's shift(): each 8-byte BC1
// block contributes its first 4 bytes to the colors plane and its last 4
// bytes to the indices plane, both planes kept in block order.
func splitColorsIndicesScalar(src, dst []byte) {
	n := len(src) / 8
	colors := dst[:n*4]
	indices := dst[n*4:]
	for i := 0; i < n; i++ {
		block := src[i*8 : i*8+8]
		copy(colors[i*4:i*4+4], block[0:4])
		copy(indices[i*4:i*4+4], block[4:8])
	}
}

func unsplitColorsIndicesScalar(src, dst []byte) {
	n := len(src) / 8
	colors := src[:n*4]
	indices := src[n*4:]
	for i := 0; i < n; i++ {
		block := dst[i*8 : i*8+8]
		copy(block[0:4], colors[i*4:i*4+4])
		copy(block[4:8], indices[i*4:i*4+4])
	}
}

// splitColorsIndicesUnroll processes `unroll` blocks per loop iteration,
// matching the shape of shift_unroll_2/shift_unroll_4/shift_unroll_8 in
// portable64.rs. It falls back to the scalar path for any trailing blocks
// that don't fill a full group, so it is safe to call with any multiple-
// of-8 length.
func splitColorsIndicesUnroll(src, dst []byte, unroll int) {
	n := len(src) / 8
	groups := n / unroll
	colors := dst[:n*4]
	indices := dst[n*4:]

	for g := 0; g < groups; g++ {
		base := g * unroll
		for j := 0; j < unroll; j++ {
			i := base + j
			block := src[i*8 : i*8+8]
			copy(colors[i*4:i*4+4], block[0:4])
			copy(indices[i*4:i*4+4], block[4:8])
		}
	}
	for i := groups * unroll; i < n; i++ {
		block := src[i*8 : i*8+8]
		copy(colors[i*4:i*4+4], block[0:4])
		copy(indices[i*4:i*4+4], block[4:8])
	}
}

func unsplitColorsIndicesUnroll(src, dst []byte, unroll int) {
	n := len(src) / 8
	groups := n / unroll
	colors := src[:n*4]
	indices := src[n*4:]

	for g := 0; g < groups; g++ {
		base := g * unroll
		for j := 0; j < unroll; j++ {
			i := base + j
			block := dst[i*8 : i*8+8]
			copy(block[0:4], colors[i*4:i*4+4])
			copy(block[4:8], indices[i*4:i*4+4])
		}
	}
	for i := groups * unroll; i < n; i++ {
		block := dst[i*8 : i*8+8]
		copy(block[0:4], colors[i*4:i*4+4])
		copy(block[4:8], indices[i*4:i*4+4])
	}
}

func decorrelateEndpointsScalar(colors []byte, v color565.Variant) {
	for i := 0; i+2 <= len(colors); i += 2 {
		c := color565.Color565(binary.LittleEndian.Uint16(colors[i : i+2]))
		binary.LittleEndian.PutUint16(colors[i:i+2], uint16(c.Decorrelate(v)))
	}
}

func recorrelateEndpointsScalar(colors []byte, v color565.Variant) {
	for i := 0; i+2 <= len(colors); i += 2 {
		c := color565.Color565(binary.LittleEndian.Uint16(colors[i : i+2]))
		binary.LittleEndian.PutUint16(colors[i:i+2], uint16(c.Recorrelate(v)))
	}
}
