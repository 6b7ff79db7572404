package estimate

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestFastHeuristicRanksRepetitiveBelowRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randomData := make([]byte, 4096)
	rng.Read(randomData)

	repetitive := bytes.Repeat([]byte{0xAB, 0xCD, 0xEF, 0x01}, 1024)

	f := &FastHeuristicEstimator{}
	randScore, err := f.Estimate(randomData, RawColors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repScore, err := f.Estimate(repetitive, RawColors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repScore >= randScore {
		t.Errorf("repetitive score %d should be smaller than random score %d", repScore, randScore)
	}
}

func TestFastHeuristicEmptyInput(t *testing.T) {
	f := &FastHeuristicEstimator{}
	got, err := f.Estimate(nil, RawColors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Estimate(nil) = %d, want 1", got)
	}
}

func TestFastHeuristicDataTypeDifferentiation(t *testing.T) {
	f := &FastHeuristicEstimator{}
	if !f.SupportsDataTypeDifferentiation() {
		t.Fatal("FastHeuristicEstimator must support data type differentiation")
	}
}

func TestZstdEstimatorMatchesRealCompression(t *testing.T) {
	data := bytes.Repeat([]byte("texture block payload"), 200)

	z := NewZstdEstimator(zstd.SpeedDefault)
	got, err := z.Estimate(data, RawColors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer enc.Close()
	want := len(enc.EncodeAll(data, nil))

	if got != want {
		t.Errorf("Estimate() = %d, want %d", got, want)
	}
}

func TestZstdEstimatorNoDataTypeDifferentiation(t *testing.T) {
	z := NewZstdEstimator(zstd.SpeedDefault)
	if z.SupportsDataTypeDifferentiation() {
		t.Fatal("ZstdEstimator should not claim data type differentiation")
	}
}
