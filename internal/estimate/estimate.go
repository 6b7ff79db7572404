// Package estimate implements the SizeEstimator contract the optimizer
// search (internal/optimizer) uses to score transform candidates, plus two
// concrete estimators: a real-compressor estimator backed by
// github.com/klauspost/compress/zstd, and a fast heuristic built from an
// LZ-match count and a byte-histogram entropy estimate, in the spirit of
// the teacher's bit-entropy helpers in internal/lossless/encode_histogram.go.
package estimate

// DataType tags the shape of the bytes being estimated, for estimators
// that vary their model accordingly (supportsDataTypeDifferentiation).
type DataType uint8

const (
	RawColors DataType = iota
	DecorrelatedColors
	SplitColors
	SplitDecorrelatedColors
	UnknownDataType
)

// Estimator scores a candidate byte stream; smaller is better. Every
// method must be safe to call repeatedly against the same scratch buffer
// (the optimizer reuses one scratch allocation across all candidates).
type Estimator interface {
	// MaxScratchSize returns the largest scratch buffer this estimator
	// will ever request for an input of inputLen bytes. May be zero.
	MaxScratchSize(inputLen int) int

	// Estimate scores input, optionally using scratch (len(scratch) >=
	// MaxScratchSize(len(input))) and the data type tag.
	Estimate(input []byte, tag DataType, scratch []byte) (int, error)

	// SupportsDataTypeDifferentiation reports whether Estimate's score
	// varies with tag.
	SupportsDataTypeDifferentiation() bool
}
