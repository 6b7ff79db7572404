package bc3

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

func randomBlocks(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n*BlockSize)
	rng.Read(buf)
	return buf
}

func TestTransformUntransformRoundTrip(t *testing.T) {
	src := randomBlocks(20, 21)

	for _, v := range []color565.Variant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3} {
		for _, split := range []bool{false, true} {
			s := format.Settings{Decorrelation: v, SplitEndpoints: split}
			dst := make([]byte, len(src))
			if err := Transform(src, dst, s); err != nil {
				t.Fatalf("settings %+v: Transform failed: %v", s, err)
			}
			restored := make([]byte, len(src))
			if err := Untransform(dst, restored, s); err != nil {
				t.Fatalf("settings %+v: Untransform failed: %v", s, err)
			}
			if !bytes.Equal(restored, src) {
				t.Fatalf("settings %+v: round trip mismatch", s)
			}
		}
	}
}

func TestAlphaPlanesUntouched(t *testing.T) {
	src := randomBlocks(3, 22)
	dst := make([]byte, len(src))
	s := format.Settings{Decorrelation: color565.Variant2, SplitEndpoints: true}
	if err := Transform(src, dst, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(src) / BlockSize
	for i := 0; i < n; i++ {
		wantEndpoints := src[i*BlockSize : i*BlockSize+2]
		gotEndpoints := dst[i*2 : i*2+2]
		if !bytes.Equal(gotEndpoints, wantEndpoints) {
			t.Errorf("block %d alpha endpoints changed: got %x, want %x", i, gotEndpoints, wantEndpoints)
		}

		wantIndices := src[i*BlockSize+2 : i*BlockSize+8]
		gotIndices := dst[n*2+i*6 : n*2+i*6+6]
		if !bytes.Equal(gotIndices, wantIndices) {
			t.Errorf("block %d alpha indices changed: got %x, want %x", i, gotIndices, wantIndices)
		}
	}
}

func TestTransformRejectsBadLength(t *testing.T) {
	src := make([]byte, 17)
	dst := make([]byte, 17)
	if err := Transform(src, dst, format.Settings{}); err == nil {
		t.Fatal("expected error for non-multiple-of-16 length")
	}
}
