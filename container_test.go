package dxt

import (
	"bytes"
	"math/rand"
	"testing"
)

// fakeDDSFile builds a toy container: a 4-byte magic, a fixed-size header
// tail, a BC1 texture-data region, and a few trailing bytes, mirroring the
// shape TransformContainer/UntransformContainer operate on without
// depending on a real DDS parser (full DDS parsing is out of scope).
func fakeDDSFile(t *testing.T, numBlocks int, magic [4]byte) (file []byte, dataOffset, dataLength int) {
	t.Helper()
	const headerTail = 12
	const trailer = 3

	dataOffset = 4 + headerTail
	dataLength = numBlocks * BlockSize(BC1)

	file = make([]byte, dataOffset+dataLength+trailer)
	copy(file[:4], magic[:])

	rng := rand.New(rand.NewSource(1))
	rng.Read(file[4:dataOffset])
	rng.Read(file[dataOffset : dataOffset+dataLength])
	rng.Read(file[dataOffset+dataLength:])

	return file, dataOffset, dataLength
}

func TestTransformContainerRoundTrip(t *testing.T) {
	magic := [4]byte{'D', 'D', 'S', ' '}
	file, dataOffset, dataLength := fakeDDSFile(t, 32, magic)

	settings := Settings{Decorrelation: DecorrelationVariant1, SplitEndpoints: true}

	transformed := make([]byte, len(file))
	if err := TransformContainer(BC1, file, transformed, dataOffset, dataLength, settings); err != nil {
		t.Fatalf("TransformContainer: %v", err)
	}

	if bytes.Equal(transformed[:4], magic[:]) {
		t.Fatalf("magic was not overwritten with the TransformHeader")
	}
	if !bytes.Equal(transformed[4:dataOffset], file[4:dataOffset]) {
		t.Fatalf("header tail was not copied verbatim")
	}
	if !bytes.Equal(transformed[dataOffset+dataLength:], file[dataOffset+dataLength:]) {
		t.Fatalf("trailing bytes were not copied verbatim")
	}

	restored := make([]byte, len(file))
	if err := UntransformContainer(transformed, restored, dataOffset, dataLength, OriginalMagic(magic)); err != nil {
		t.Fatalf("UntransformContainer: %v", err)
	}

	if !bytes.Equal(restored, file) {
		t.Fatalf("round trip did not reproduce the original file")
	}
}

func TestTransformContainerRejectsShortInput(t *testing.T) {
	magic := [4]byte{'D', 'D', 'S', ' '}
	file, dataOffset, dataLength := fakeDDSFile(t, 4, magic)
	short := file[:dataOffset+dataLength-1]

	out := make([]byte, len(short))
	err := TransformContainer(BC1, short, out, dataOffset, dataLength, Settings{})
	if err == nil {
		t.Fatalf("expected an error for a file too short for the stated texture size")
	}
}

func TestUntransformContainerRejectsBadHeader(t *testing.T) {
	junk := make([]byte, 64)
	rand.New(rand.NewSource(2)).Read(junk)
	// Force the reserved bits on, which ParseHeader must reject regardless
	// of what the rest of the junk header contains.
	junk[3] |= 0xC0

	out := make([]byte, len(junk))
	err := UntransformContainer(junk, out, 16, 32, OriginalMagic{'D', 'D', 'S', ' '})
	if err == nil {
		t.Fatalf("expected an error for a header with reserved bits set")
	}
}
