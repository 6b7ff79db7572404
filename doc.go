// Package dxt implements lossless, reversible transforms over
// block-compressed GPU texture data (BC1/DXT1, BC2/DXT3, BC3/DXT5; BC7 is
// recognised but not yet implemented). A transform rearranges an
// interleaved block stream into separated per-field streams - colours,
// indices, and (for BC2/BC3) alpha - so that a general-purpose compressor
// downstream sees longer runs of correlated bytes. Every transform has an
// exact inverse; applying a transform and its inverse reproduces the
// original bytes, with the single documented exception of the optional
// block-normalization pass, which is reversible at the decoded-pixel level
// but not necessarily at the binary level.
//
// The package performs no I/O and spawns no goroutines: every call is a
// synchronous, single-threaded operation over caller-supplied buffers.
// Calls may allocate more than one temporary buffer (Untransform, for
// example, copies the streams it reassembles, and DetermineOptimal
// allocates a full-size output buffer). Callers embedding transformed
// streams inside a container format (DDS and similar) follow the protocol
// described on TransformContainer and UntransformContainer.
package dxt
