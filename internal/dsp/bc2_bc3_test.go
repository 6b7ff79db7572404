package dsp

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSplitUnsplitBC2RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	src := make([]byte, 16*9)
	rng.Read(src)

	split := make([]byte, len(src))
	SplitBC2(src, split)

	restored := make([]byte, len(src))
	UnsplitBC2(split, restored)

	if !bytes.Equal(restored, src) {
		t.Fatalf("BC2 split/unsplit round trip mismatch")
	}
}

func TestSplitBC2PlaneLayout(t *testing.T) {
	block := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, // alpha
		9, 10, 11, 12, // colours
		13, 14, 15, 16, // indices
	}
	out := make([]byte, 16)
	SplitBC2(block, out)

	if !bytes.Equal(out[0:8], block[0:8]) {
		t.Errorf("alpha plane = %v, want %v", out[0:8], block[0:8])
	}
	if !bytes.Equal(out[8:12], block[8:12]) {
		t.Errorf("colour plane = %v, want %v", out[8:12], block[8:12])
	}
	if !bytes.Equal(out[12:16], block[12:16]) {
		t.Errorf("index plane = %v, want %v", out[12:16], block[12:16])
	}
}

func TestSplitUnsplitBC3RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	src := make([]byte, 16*9)
	rng.Read(src)

	split := make([]byte, len(src))
	SplitBC3(src, split)

	restored := make([]byte, len(src))
	UnsplitBC3(split, restored)

	if !bytes.Equal(restored, src) {
		t.Fatalf("BC3 split/unsplit round trip mismatch")
	}
}

func TestSplitBC3PlaneLayout(t *testing.T) {
	block := []byte{
		1, 2, // alpha endpoints
		3, 4, 5, 6, 7, 8, // alpha indices
		9, 10, 11, 12, // colours
		13, 14, 15, 16, // indices
	}
	out := make([]byte, 16)
	SplitBC3(block, out)

	if !bytes.Equal(out[0:2], block[0:2]) {
		t.Errorf("alpha endpoints = %v, want %v", out[0:2], block[0:2])
	}
	if !bytes.Equal(out[2:8], block[2:8]) {
		t.Errorf("alpha indices = %v, want %v", out[2:8], block[2:8])
	}
	if !bytes.Equal(out[8:12], block[8:12]) {
		t.Errorf("colour plane = %v, want %v", out[8:12], block[8:12])
	}
	if !bytes.Equal(out[12:16], block[12:16]) {
		t.Errorf("index plane = %v, want %v", out[12:16], block[12:16])
	}
}
