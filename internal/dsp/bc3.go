package dsp

// SplitBC3 separates an interleaved BC3 block stream (each 16-byte block:
// 2-byte alpha endpoint pair, 6-byte 3bpp alpha index field, 4-byte
// colour pair, 4-byte index word) into four contiguous planes in dst:
// alpha endpoints (len/8 bytes), alpha indices (3*len/8 bytes), colours
// (len/4 bytes), indices (len/4 bytes). len(src) must be a multiple of 16.
//
// Grounded on the u32/u32_unroll_2 reference kernels in
// original_source/projects/dxt-lossless-transform/src/raw/bc3/transform/portable32.rs.
func SplitBC3(src, dst []byte) {
	n := len(src) / 16
	alphaEndpoints := dst[:n*2]
	alphaIndices := dst[n*2 : n*2+n*6]
	colors := dst[n*2+n*6 : n*2+n*6+n*4]
	indices := dst[n*2+n*6+n*4:]

	for i := 0; i < n; i++ {
		block := src[i*16 : i*16+16]
		copy(alphaEndpoints[i*2:i*2+2], block[0:2])
		copy(alphaIndices[i*6:i*6+6], block[2:8])
		copy(colors[i*4:i*4+4], block[8:12])
		copy(indices[i*4:i*4+4], block[12:16])
	}
}

// UnsplitBC3 inverts SplitBC3.
func UnsplitBC3(src, dst []byte) {
	n := len(dst) / 16
	alphaEndpoints := src[:n*2]
	alphaIndices := src[n*2 : n*2+n*6]
	colors := src[n*2+n*6 : n*2+n*6+n*4]
	indices := src[n*2+n*6+n*4:]

	for i := 0; i < n; i++ {
		block := dst[i*16 : i*16+16]
		copy(block[0:2], alphaEndpoints[i*2:i*2+2])
		copy(block[2:8], alphaIndices[i*6:i*6+6])
		copy(block[8:12], colors[i*4:i*4+4])
		copy(block[12:16], indices[i*4:i*4+4])
	}
}
