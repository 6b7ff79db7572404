package estimate

import "github.com/klauspost/compress/zstd"

// ZstdEstimator is the "real-compressor" estimator: it runs zstd at a
// fixed level and returns the exact compressed byte count. Accurate, and
// the slowest of the two concrete estimators.
type ZstdEstimator struct {
	Level zstd.EncoderLevel
}

// NewZstdEstimator returns a ZstdEstimator at the given level. Zero value
// of EncoderLevel means zstd's default level.
func NewZstdEstimator(level zstd.EncoderLevel) *ZstdEstimator {
	return &ZstdEstimator{Level: level}
}

// MaxScratchSize is always zero: the zstd encoder manages its own working
// set internally and needs nothing from the optimizer's scratch buffer.
func (z *ZstdEstimator) MaxScratchSize(inputLen int) int { return 0 }

// SupportsDataTypeDifferentiation is false: zstd compresses the bytes it
// is given regardless of what they semantically represent.
func (z *ZstdEstimator) SupportsDataTypeDifferentiation() bool { return false }

func (z *ZstdEstimator) Estimate(input []byte, tag DataType, scratch []byte) (int, error) {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return 0, err
	}
	defer enc.Close()

	compressed := enc.EncodeAll(input, nil)
	return len(compressed), nil
}
