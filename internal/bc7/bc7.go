// Package bc7 reserves the block-format slot for BC7. The specification
// carries BC7 in its format tag space but does not require a working
// kernel for it yet; Transform and Untransform report that explicitly
// rather than silently treating BC7 data as one of the other formats.
package bc7

import "errors"

// BlockSize is the fixed byte size of one BC7 block.
const BlockSize = 16

// ErrNotImplemented is returned by Transform and Untransform. Wrapped as
// dxt.FormatNotImplementedError{Tag: format.BC7} at the package facade.
var ErrNotImplemented = errors.New("bc7: block format has no transform kernel")

func Transform(src, dst []byte) error {
	return ErrNotImplemented
}

func Untransform(src, dst []byte) error {
	return ErrNotImplemented
}
