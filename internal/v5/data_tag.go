package v5

import (
	"encoding/binary"
	"fmt"
)

// DataType identifies the wire encoding of a sub-element's payload — the
// value carried in a tag's type field. It is distinct from
// types.MatlabType, the array class declared in the Array Flags
// sub-element; the coercion table in coercion.go maps between the two.
type DataType uint32

// Wire element types, matching the MAT-file v5 on-disk tag values.
const (
	Int8 DataType = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Single
	_ // 8 is reserved
	Double
	_ // 10 is reserved
	_ // 11 is reserved
	Int64
	Uint64
	Matrix
	Compressed
	Utf8
	Utf16
	Utf32
)

// elementSize returns the on-disk width of one element of t, or 0 if t
// has no fixed element width (Matrix, Compressed, the UTF types).
func (t DataType) elementSize() int {
	switch t {
	case Int8, Uint8, Utf8:
		return 1
	case Int16, Uint16, Utf16:
		return 2
	case Int32, Uint32, Single, Utf32:
		return 4
	case Double, Int64, Uint64:
		return 8
	default:
		return 0
	}
}

func (t DataType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Single:
		return "single"
	case Double:
		return "double"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Matrix:
		return "matrix"
	case Compressed:
		return "compressed"
	case Utf8:
		return "utf8"
	case Utf16:
		return "utf16"
	case Utf32:
		return "utf32"
	default:
		return fmt.Sprintf("DataType(%d)", uint32(t))
	}
}

// maxReasonableSize bounds a single tag's declared byte size (2GB), guarding
// against memory exhaustion from a corrupt or hostile size field.
const maxReasonableSize = 2 * 1024 * 1024 * 1024

// tag is a decoded data element tag: its wire type, its payload size in
// bytes, and whether it used the 4-byte Small Data Element Format.
type tag struct {
	Type  DataType
	Size  uint32
	Small bool
}

// readTag decodes the tag at data[pos:] and returns it along with the
// number of bytes consumed from the tag itself (4 for small form, 8 for
// long form). It does not consume the payload — callers read exactly
// Size bytes starting at pos+consumed, which for small-form tags is the
// second half of the same 8-byte word.
func readTag(data []byte, pos int, order binary.ByteOrder) (tag, int, error) {
	if pos+4 > len(data) {
		return tag{}, 0, fmt.Errorf("%w: tag at offset %d", ErrTruncated, pos)
	}
	firstWord := order.Uint32(data[pos : pos+4])

	if size := firstWord >> 16; size > 0 && size <= 4 {
		return tag{
			Type:  DataType(firstWord & 0xFFFF),
			Size:  size,
			Small: true,
		}, 4, nil
	}

	if pos+8 > len(data) {
		return tag{}, 0, fmt.Errorf("%w: tag at offset %d", ErrTruncated, pos)
	}
	size := order.Uint32(data[pos+4 : pos+8])
	if size > maxReasonableSize {
		return tag{}, 0, fmt.Errorf("%w: declared size %d exceeds %d", ErrMalformedTag, size, maxReasonableSize)
	}
	return tag{Type: DataType(firstWord), Size: size}, 8, nil
}

// payloadPadding returns the number of zero padding bytes that follow a
// sub-element's payload so the next sub-element starts 8-byte aligned.
// A small-form element always occupies exactly 8 bytes, so its 1-4 byte
// payload is followed by 4-Size bytes of padding within that envelope.
func payloadPadding(t tag) int {
	if t.Small {
		return int(4 - t.Size)
	}
	return int((8 - t.Size%8) % 8)
}

// readElement decodes one full sub-element (tag, payload, and trailing
// padding) starting at pos, returning the tag, its payload bytes, and
// the offset of the next sub-element.
func readElement(data []byte, pos int, order binary.ByteOrder) (tag, []byte, int, error) {
	t, consumed, err := readTag(data, pos, order)
	if err != nil {
		return tag{}, nil, 0, err
	}
	payloadStart := pos + consumed
	if payloadStart+int(t.Size) > len(data) {
		return tag{}, nil, 0, fmt.Errorf("%w: payload at offset %d wants %d bytes", ErrTruncated, payloadStart, t.Size)
	}
	payload := data[payloadStart : payloadStart+int(t.Size)]
	next := payloadStart + int(t.Size) + payloadPadding(t)
	return t, payload, next, nil
}

// writeElement renders dataType and payload as a sub-element: small
// form (4-byte tag packing size and type, payload packed into the
// remaining 4 bytes) when payload is 1-4 bytes, long form otherwise.
func writeElement(order binary.ByteOrder, dataType DataType, payload []byte) []byte {
	n := len(payload)
	if n >= 1 && n <= 4 {
		buf := make([]byte, 8)
		order.PutUint32(buf[0:4], uint32(n)<<16|uint32(dataType))
		copy(buf[4:8], payload)
		return buf
	}

	padding := (8 - n%8) % 8
	buf := make([]byte, 8+n+padding)
	order.PutUint32(buf[0:4], uint32(dataType))
	order.PutUint32(buf[4:8], uint32(n)) //nolint:gosec // payload sizes are bounded well under 2^32
	copy(buf[8:8+n], payload)
	return buf
}
