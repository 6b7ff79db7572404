package dxt

import (
	"errors"
	"fmt"

	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
)

// Sentinel errors returned by the core transform and container-collaborator
// surfaces. Wrap with fmt.Errorf("...: %w", err) where extra context
// helps; compare with errors.Is.
var (
	// ErrInvalidLength is returned when an input byte count is not a
	// positive multiple of the format's block size.
	ErrInvalidLength = errors.New("dxt: input length is not a positive multiple of the block size")

	// ErrAllocationFailed is returned when the scratch allocator could not
	// satisfy a request. The Go allocator panics rather than failing and
	// the scratch allocator has no failure path, so no function in this
	// package returns it.
	ErrAllocationFailed = errors.New("dxt: scratch allocation failed")

	// ErrUnknownFileFormat is returned by container-collaborator helpers
	// when a format tag is unrecognised.
	ErrUnknownFileFormat = errors.New("dxt: unknown file format")

	// ErrNullPointer exists for parity with the C-ABI error surface this
	// package's contract is modeled on; Go's nil-slice/nil-pointer checks
	// make most of those cases unreachable; kept for callers that bridge
	// to cgo.
	ErrNullPointer = errors.New("dxt: null pointer")
)

// OutputBufferTooSmallError reports that a caller-supplied destination
// buffer cannot hold the transform's output.
type OutputBufferTooSmallError struct {
	Required int
	Actual   int
}

func (e *OutputBufferTooSmallError) Error() string {
	return fmt.Sprintf("dxt: output buffer too small: need %d bytes, have %d", e.Required, e.Actual)
}

// EstimatorFailedError wraps an error returned by a pluggable SizeEstimator.
type EstimatorFailedError struct {
	Err error
}

func (e *EstimatorFailedError) Error() string {
	return fmt.Sprintf("dxt: size estimator failed: %v", e.Err)
}

func (e *EstimatorFailedError) Unwrap() error { return e.Err }

// InvalidInputFileHeaderError reports that a container's header could not
// be parsed before magic restoration.
type InvalidInputFileHeaderError struct {
	Reason string
}

func (e *InvalidInputFileHeaderError) Error() string {
	return fmt.Sprintf("dxt: invalid input file header: %s", e.Reason)
}

// InvalidRestoredFileHeaderError reports that the 4-byte TransformHeader
// failed to parse after the container's original magic was restored.
type InvalidRestoredFileHeaderError struct {
	Reason string
}

func (e *InvalidRestoredFileHeaderError) Error() string {
	return fmt.Sprintf("dxt: invalid restored file header: %s", e.Reason)
}

// FormatNotImplementedError reports that tag is a recognised block format
// with no working kernel yet (BC7, currently).
type FormatNotImplementedError struct {
	Tag format.Tag
}

func (e *FormatNotImplementedError) Error() string {
	return fmt.Sprintf("dxt: format %s is not implemented", e.Tag)
}

// NoBuilderForFormatError reports that an optimizer bundle has no
// estimator/search configuration registered for tag.
type NoBuilderForFormatError struct {
	Tag format.Tag
}

func (e *NoBuilderForFormatError) Error() string {
	return fmt.Sprintf("dxt: no optimizer builder registered for format %s", e.Tag)
}

// InputTooShortForStatedTextureSizeError reports that a container header
// declares more texture data than the file actually contains.
type InputTooShortForStatedTextureSizeError struct {
	Required int
	Actual   int
}

func (e *InputTooShortForStatedTextureSizeError) Error() string {
	return fmt.Sprintf("dxt: input too short for stated texture size: need %d bytes, have %d", e.Required, e.Actual)
}
