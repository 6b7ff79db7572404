// Package format defines the block-format tag, per-format block sizes, and
// the compact on-disk TransformHeader that makes an inverse transform
// self-describing. It is the texture-transform analogue of the teacher's
// internal/container constants package: small, dependency-free, shared by
// every other internal package.
package format

import "fmt"

// Tag enumerates the supported block-compressed texture formats.
type Tag uint8

const (
	BC1 Tag = iota
	BC2
	BC3
	BC7
)

// String returns the canonical short name used in error messages.
func (t Tag) String() string {
	switch t {
	case BC1:
		return "BC1"
	case BC2:
		return "BC2"
	case BC3:
		return "BC3"
	case BC7:
		return "BC7"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// BlockSize returns the fixed byte size of one block for the format, or 0
// for an unrecognised tag.
func (t Tag) BlockSize() int {
	switch t {
	case BC1:
		return 8
	case BC2, BC3, BC7:
		return 16
	default:
		return 0
	}
}

// Valid reports whether t is one of the four recognised tags.
func (t Tag) Valid() bool {
	return t <= BC7
}
