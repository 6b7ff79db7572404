package dxt

import "github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"

// HeaderSize is the fixed byte size of a TransformHeader.
const HeaderSize = format.HeaderSize

// PackHeader serialises a format tag and Settings into the 4-byte
// TransformHeader described in the container-collaborator contract: it
// intentionally overlaps a container's 4-byte magic, so a collaborator
// must restore the original magic from a known constant before parsing
// the rest of the header on the way back (see ParseHeader).
func PackHeader(f Format, settings Settings) [HeaderSize]byte {
	return format.PackHeader(format.Tag(f), settings)
}

// ParseHeader deserialises a 4-byte TransformHeader, returning
// InvalidRestoredFileHeaderError if its reserved bits are non-zero.
func ParseHeader(raw [HeaderSize]byte) (Format, Settings, error) {
	tag, settings, err := format.ParseHeader(raw)
	if err != nil {
		return 0, Settings{}, &InvalidRestoredFileHeaderError{Reason: err.Error()}
	}
	return Format(tag), settings, nil
}
