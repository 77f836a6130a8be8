package v5

import (
	"fmt"

	"github.com/scigolib/matlab/types"
)

// File is a parsed v5 MAT-file: its header plus every array the
// top-level loop managed to decode before running out of bytes or
// reaching a top-level element it could not read.
type File struct {
	Header *Header
	Arrays []*types.Array
}

// MaxInflatedSize, when non-zero, overrides defaultMaxInflatedSize for
// every miCOMPRESSED element this Parse call decodes.
type ParseOptions struct {
	MaxInflatedSize int
}

// Parse decodes a complete in-memory MAT-file v5 buffer.
//
// A parse failure while reading a top-level element is treated as a
// truncated trailing element: the loop stops and returns everything
// decoded so far, matching the behavior real MATLAB installations
// show toward partially-written files. A parse failure *inside* a
// matrix's sub-elements is fatal, since it indicates corruption inside
// an element whose outer framing was complete.
func Parse(data []byte, opts ParseOptions) (*File, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: file is %d bytes, need at least %d", ErrTruncated, len(data), HeaderSize)
	}
	header, err := ParseHeader(data[:HeaderSize])
	if err != nil {
		return nil, err
	}

	file := &File{Header: header}
	pos := HeaderSize

	for pos < len(data) {
		t, payload, next, err := readElement(data, pos, header.Order)
		if err != nil {
			break
		}
		pos = next

		switch t.Type {
		case Matrix:
			array, err := decodeMatrix(header.Order, payload)
			if err != nil {
				return nil, fmt.Errorf("array at offset %d: %w", pos, err)
			}
			file.Arrays = append(file.Arrays, array)

		case Compressed:
			inflated, err := inflate(payload, opts.MaxInflatedSize)
			if err != nil {
				return nil, err
			}
			innerTag, innerPayload, _, err := readElement(inflated, 0, header.Order)
			if err != nil {
				return nil, fmt.Errorf("compressed element: %w", err)
			}
			if innerTag.Type != Matrix {
				return nil, fmt.Errorf("%w: compressed element wraps %s, not a matrix", ErrUnknownDataType, innerTag.Type)
			}
			array, err := decodeMatrix(header.Order, innerPayload)
			if err != nil {
				return nil, fmt.Errorf("compressed array: %w", err)
			}
			file.Arrays = append(file.Arrays, array)

		default:
			// Unrecognized top-level element type: already consumed
			// and skipped by readElement above.
		}
	}

	return file, nil
}
