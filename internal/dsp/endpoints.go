package dsp

// SplitEndpoints separates a stream of n (color0, color1) u16 pairs
// (len(src) == n*4 bytes, little-endian, interleaved as color0,color1 per
// block) into two parallel streams: n color0 values followed by n color1
// values. dst must be the same length as src; src and dst must not
// overlap.
//
// Grounded on §4.3's endpoint-split kernel: colour0 and colour1 correlate
// with the same endpoint of neighbouring blocks, not with each other, so
// separating them gives the entropy coder longer correlated runs.
var SplitEndpoints func(src, dst []byte)

// UnsplitEndpoints inverts SplitEndpoints.
var UnsplitEndpoints func(src, dst []byte)

func init() {
	SplitEndpoints = splitEndpointsScalar
	UnsplitEndpoints = unsplitEndpointsScalar
}

func splitEndpointsScalar(src, dst []byte) {
	n := len(src) / 4
	color0 := dst[:n*2]
	color1 := dst[n*2:]
	for i := 0; i < n; i++ {
		pair := src[i*4 : i*4+4]
		copy(color0[i*2:i*2+2], pair[0:2])
		copy(color1[i*2:i*2+2], pair[2:4])
	}
}

func unsplitEndpointsScalar(src, dst []byte) {
	n := len(src) / 4
	color0 := src[:n*2]
	color1 := src[n*2:]
	for i := 0; i < n; i++ {
		pair := dst[i*4 : i*4+4]
		copy(pair[0:2], color0[i*2:i*2+2])
		copy(pair[2:4], color1[i*2:i*2+2])
	}
}
