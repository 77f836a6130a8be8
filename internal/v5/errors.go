package v5

import "errors"

// Sentinel errors for the wire-format codec. matfile.go's Decode returns
// errors from Parse unchanged; a header error is reported under
// ErrInvalidFormat with this package's error included only as text.
var (
	// ErrHeaderMarker is returned when the 128-byte header's endian marker
	// is neither "IM" nor "MI".
	ErrHeaderMarker = errors.New("v5: invalid header endian marker")

	// ErrUnknownDataType is returned when a tag names a wire element type
	// this codec does not recognize.
	ErrUnknownDataType = errors.New("v5: unknown data element type")

	// ErrUnknownMatlabType is returned when an Array Flags sub-element
	// names a class byte this codec does not recognize.
	ErrUnknownMatlabType = errors.New("v5: unknown MATLAB array class")

	// ErrMalformedTag is returned when a fixed-shape sub-element's tag
	// doesn't match what that sub-element requires (e.g. Array Flags
	// must be tagged UInt32 with byte_size 8).
	ErrMalformedTag = errors.New("v5: malformed sub-element tag")

	// ErrTruncated is returned when the byte stream ends in the middle of
	// a sub-element. Sub-element truncation is always fatal to the
	// enclosing matrix, unlike truncation between top-level elements.
	ErrTruncated = errors.New("v5: truncated data element")

	// ErrCompression is returned when a Compressed element's payload
	// fails to inflate, or exceeds the configured size/ratio guard.
	ErrCompression = errors.New("v5: zlib decompression failed")

	// ErrConversion is returned when the coercion table (§4.7) forbids
	// widening an on-disk element type to an array's declared class.
	ErrConversion = errors.New("v5: unsupported numeric type conversion")

	// ErrUnsupportedClass is returned by the writer when asked to encode
	// a class this codec does not model as dense numeric data.
	ErrUnsupportedClass = errors.New("v5: class cannot be written")
)
