package v5

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/matlab/types"
)

const (
	flagComplex = 1 << 11
	flagGlobal  = 1 << 10
	flagLogical = 1 << 9
)

// decodeMatrix parses the content of a miMATRIX element (everything
// after its own tag) into an Array. Sparse, Char, Cell, Struct,
// Object, Function, and Opaque arrays are parsed just far enough to
// stay byte-aligned with the rest of the file — their framing is
// consumed but Array.Data is left nil (Array.Unsupported reports
// true).
func decodeMatrix(order binary.ByteOrder, data []byte) (*types.Array, error) {
	pos := 0

	flagsTag, flagsPayload, next, err := readElement(data, pos, order)
	if err != nil {
		return nil, fmt.Errorf("array flags: %w", err)
	}
	if flagsTag.Type != Uint32 || len(flagsPayload) != 8 {
		return nil, fmt.Errorf("%w: array flags must be an 8-byte miUINT32 element", ErrMalformedTag)
	}
	pos = next

	flagWord := order.Uint32(flagsPayload[0:4])
	class := types.MatlabType(flagWord & 0xFF)
	if class < types.Cell || class > types.Opaque {
		return nil, fmt.Errorf("%w: class byte %d", ErrUnknownMatlabType, uint8(class))
	}
	nzmax := order.Uint32(flagsPayload[4:8])

	flags := types.ArrayFlags{
		Complex: flagWord&flagComplex != 0,
		Global:  flagWord&flagGlobal != 0,
		Logical: flagWord&flagLogical != 0,
		Class:   class,
		Nzmax:   nzmax,
	}

	_, dimsPayload, next, err := readElement(data, pos, order)
	if err != nil {
		return nil, fmt.Errorf("dimensions: %w", err)
	}
	pos = next
	if len(dimsPayload)%4 != 0 {
		return nil, fmt.Errorf("%w: dimensions array is not a whole number of int32s", ErrMalformedTag)
	}
	dims := make([]int, len(dimsPayload)/4)
	for i := range dims {
		dims[i] = int(int32(order.Uint32(dimsPayload[i*4:])))
	}

	_, namePayload, next, err := readElement(data, pos, order)
	if err != nil {
		return nil, fmt.Errorf("array name: %w", err)
	}
	pos = next
	name := string(namePayload)

	array := &types.Array{Flags: flags, Name: name, Size: dims}

	if class == types.Sparse {
		// Row index and column shift sub-elements keep the element
		// byte-aligned; this codec doesn't model sparse storage, so
		// they're skipped once consumed.
		for i := 0; i < 2; i++ {
			_, _, n, err := readElement(data, pos, order)
			if err != nil {
				return nil, fmt.Errorf("sparse index %d: %w", i, err)
			}
			pos = n
		}
	}

	if !class.IsNumeric() {
		return array, nil
	}

	realTag, realPayload, next, err := readElement(data, pos, order)
	if err != nil {
		return nil, fmt.Errorf("real data: %w", err)
	}
	pos = next

	realRaw, err := decodeNumeric(order, realTag.Type, realPayload)
	if err != nil {
		return nil, fmt.Errorf("real data: %w", err)
	}
	real, err := coerce(class, realTag.Type, realRaw)
	if err != nil {
		return nil, fmt.Errorf("real data: %w", err)
	}

	numData := &types.NumericData{Class: class, Real: real}

	if flags.Complex {
		imagTag, imagPayload, n, err := readElement(data, pos, order)
		if err != nil {
			return nil, fmt.Errorf("imaginary data: %w", err)
		}
		pos = n

		imagRaw, err := decodeNumeric(order, imagTag.Type, imagPayload)
		if err != nil {
			return nil, fmt.Errorf("imaginary data: %w", err)
		}
		imag, err := coerce(class, imagTag.Type, imagRaw)
		if err != nil {
			return nil, fmt.Errorf("imaginary data: %w", err)
		}
		numData.Imag = imag
	}

	array.Data = numData
	return array, nil
}

// encodeMatrix renders array as a miMATRIX element's content (not
// including its own outer tag).
func encodeMatrix(order binary.ByteOrder, array *types.Array) ([]byte, error) {
	if array.Unsupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, array.Flags.Class)
	}

	var flagWord uint32
	if array.Flags.Complex {
		flagWord |= flagComplex
	}
	if array.Flags.Global {
		flagWord |= flagGlobal
	}
	if array.Flags.Logical {
		flagWord |= flagLogical
	}

	flagsPayload := make([]byte, 8)
	order.PutUint32(flagsPayload[0:4], flagWord|uint32(array.Flags.Class)&0xFF)
	order.PutUint32(flagsPayload[4:8], array.Flags.Nzmax)

	buf := append([]byte{}, writeElement(order, Uint32, flagsPayload)...)

	dimsPayload := make([]byte, len(array.Size)*4)
	for i, d := range array.Size {
		order.PutUint32(dimsPayload[i*4:], uint32(d)) //nolint:gosec // dimensions are validated positive and small
	}
	buf = append(buf, writeElement(order, Int32, dimsPayload)...)

	buf = append(buf, writeElement(order, Int8, []byte(array.Name))...)

	wire, ok := nativeDataType(array.Flags.Class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, array.Flags.Class)
	}

	realPayload, err := encodeNumeric(order, wire, array.Data.Real)
	if err != nil {
		return nil, fmt.Errorf("real data: %w", err)
	}
	buf = append(buf, writeElement(order, wire, realPayload)...)

	if array.Flags.Complex {
		imagPayload, err := encodeNumeric(order, wire, array.Data.Imag)
		if err != nil {
			return nil, fmt.Errorf("imaginary data: %w", err)
		}
		buf = append(buf, writeElement(order, wire, imagPayload)...)
	}

	return buf, nil
}
