package format

import (
	"testing"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
)

func TestHeaderRoundTrip(t *testing.T) {
	tags := []Tag{BC1, BC2, BC3, BC7}
	variants := []color565.Variant{color565.VariantNone, color565.Variant1, color565.Variant2, color565.Variant3}
	splits := []bool{false, true}
	norms := []NormalizeMode{NormalizeOff, NormalizeColorOnly}

	for _, tag := range tags {
		for _, v := range variants {
			for _, sp := range splits {
				for _, n := range norms {
					want := Settings{Decorrelation: v, SplitEndpoints: sp, Normalize: n}
					raw := PackHeader(tag, want)
					gotTag, gotSettings, err := ParseHeader(raw)
					if err != nil {
						t.Fatalf("ParseHeader(%v) unexpected error: %v", raw, err)
					}
					if gotTag != tag {
						t.Errorf("tag = %v, want %v", gotTag, tag)
					}
					if gotSettings != want {
						t.Errorf("settings = %+v, want %+v", gotSettings, want)
					}
				}
			}
		}
	}
}

func TestHeaderRepeatModeCollapsesToColorOnly(t *testing.T) {
	raw := PackHeader(BC1, Settings{Normalize: NormalizeColorRepeat})
	_, got, err := ParseHeader(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Normalize != NormalizeColorOnly {
		t.Errorf("Normalize = %v, want NormalizeColorOnly (repeat flag is not wire-visible)", got.Normalize)
	}
}

func TestParseHeaderRejectsReservedBits(t *testing.T) {
	cases := [][HeaderSize]byte{
		{0x40, 0, 0, 0},
		{0x80, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	for _, raw := range cases {
		if _, _, err := ParseHeader(raw); err == nil {
			t.Errorf("ParseHeader(%v) = nil error, want ErrReservedBitsSet", raw)
		}
	}
}

func TestPackHeaderIsFourBytes(t *testing.T) {
	raw := PackHeader(BC3, Settings{Decorrelation: color565.Variant2, SplitEndpoints: true})
	if len(raw) != HeaderSize {
		t.Fatalf("len(raw) = %d, want %d", len(raw), HeaderSize)
	}
}
