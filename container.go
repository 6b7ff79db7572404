package dxt

import "fmt"

// OriginalMagic is written back into a container's first four bytes on the
// inverse path, after the TransformHeader stored there has been parsed. A
// collaborator's forward path must know this constant too, since it is
// what TransformContainer overwrites.
type OriginalMagic [4]byte

// TransformContainer implements the forward half of the
// container-collaborator contract: copy everything outside
// [dataOffset, dataOffset+dataLength) through verbatim, transform the
// texture-data slice in place, and overwrite the container's 4-byte magic
// with the packed TransformHeader. input and output must be the same
// length; output holds the full transformed file on success.
func TransformContainer(f Format, input, output []byte, dataOffset, dataLength int, settings Settings) error {
	if len(output) != len(input) {
		return &OutputBufferTooSmallError{Required: len(input), Actual: len(output)}
	}
	if dataOffset < 4 {
		return &InvalidInputFileHeaderError{Reason: "data offset must leave room for the 4-byte magic"}
	}
	if len(input) < dataOffset+dataLength {
		return &InputTooShortForStatedTextureSizeError{Required: dataOffset + dataLength, Actual: len(input)}
	}

	copy(output, input)

	if err := Transform(f, input[dataOffset:dataOffset+dataLength], output[dataOffset:dataOffset+dataLength], settings); err != nil {
		return err
	}

	header := PackHeader(f, settings)
	copy(output[:4], header[:])
	return nil
}

// UntransformContainer implements the inverse half of the
// container-collaborator contract: parse the TransformHeader from input's
// first four bytes, write originalMagic over those same four bytes in
// output, then invert the texture-data transform in place and copy the
// remainder verbatim.
func UntransformContainer(input, output []byte, dataOffset, dataLength int, originalMagic OriginalMagic) error {
	if len(output) != len(input) {
		return &OutputBufferTooSmallError{Required: len(input), Actual: len(output)}
	}
	if len(input) < 4 {
		return &InvalidInputFileHeaderError{Reason: "input shorter than the 4-byte header"}
	}

	var raw [HeaderSize]byte
	copy(raw[:], input[:4])
	f, settings, err := ParseHeader(raw)
	if err != nil {
		return err
	}

	if len(input) < dataOffset+dataLength {
		return &InputTooShortForStatedTextureSizeError{Required: dataOffset + dataLength, Actual: len(input)}
	}

	copy(output, input)
	copy(output[:4], originalMagic[:])

	if err := Untransform(f, input[dataOffset:dataOffset+dataLength], output[dataOffset:dataOffset+dataLength], settings); err != nil {
		return fmt.Errorf("dxt: untransform container payload: %w", err)
	}
	return nil
}
