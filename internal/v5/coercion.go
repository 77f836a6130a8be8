package v5

import (
	"fmt"

	"github.com/scigolib/matlab/types"
)

// numericElem is the set of element types decodeNumeric/encodeNumeric
// produce and consume.
type numericElem interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// widen converts a slice of one numeric element type to another,
// applying Go's ordinary numeric conversion to each element.
func widen[S, D numericElem](src []S) []D {
	out := make([]D, len(src))
	for i, v := range src {
		out[i] = D(v)
	}
	return out
}

// nativeDataType returns the wire element type a freshly-written array
// of class uses to store its own data — the identity entry of the
// coercion table. Int32 maps to the Int32 wire type (not Uint32, which
// is what the program this codec was distilled from actually emits —
// see the type-coercion note in the accompanying design notes).
func nativeDataType(class types.MatlabType) (DataType, bool) {
	switch class {
	case types.Double:
		return Double, true
	case types.Single:
		return Single, true
	case types.Int8:
		return Int8, true
	case types.Uint8:
		return Uint8, true
	case types.Int16:
		return Int16, true
	case types.Uint16:
		return Uint16, true
	case types.Int32:
		return Int32, true
	case types.Uint32:
		return Uint32, true
	case types.Int64:
		return Int64, true
	case types.Uint64:
		return Uint64, true
	default:
		return 0, false
	}
}

type coercionKey struct {
	class types.MatlabType
	wire  DataType
}

var coercionTable = map[coercionKey]func(interface{}) interface{}{}

func register[S, D numericElem](class types.MatlabType, wire DataType) {
	coercionTable[coercionKey{class, wire}] = func(v interface{}) interface{} {
		return widen[S, D](v.([]S))
	}
}

func init() {
	// Identity conversions: every class reads its own native wire type.
	register[int8, int8](types.Int8, Int8)
	register[uint8, uint8](types.Uint8, Uint8)
	register[int16, int16](types.Int16, Int16)
	register[uint16, uint16](types.Uint16, Uint16)
	register[int32, int32](types.Int32, Int32)
	register[uint32, uint32](types.Uint32, Uint32)
	register[int64, int64](types.Int64, Int64)
	register[uint64, uint64](types.Uint64, Uint64)
	register[float32, float32](types.Single, Single)
	register[float64, float64](types.Double, Double)

	// The rest of the table follows spec §4.7's coercion matrix exactly:
	// a conversion is permitted only where it's a value-preserving
	// promotion, and every row lists the wire types permitted to widen
	// into that target class in addition to the target's own native
	// type (already registered as an identity above).

	// To Double/Single: from {UInt8, Int16, UInt16, Int32} and itself.
	register[uint8, float64](types.Double, Uint8)
	register[int16, float64](types.Double, Int16)
	register[uint16, float64](types.Double, Uint16)
	register[int32, float64](types.Double, Int32)

	register[uint8, float32](types.Single, Uint8)
	register[int16, float32](types.Single, Int16)
	register[uint16, float32](types.Single, Uint16)
	register[int32, float32](types.Single, Int32)

	// To Int64/UInt64: from {UInt8, Int16, UInt16, Int32} and itself.
	register[uint8, int64](types.Int64, Uint8)
	register[int16, int64](types.Int64, Int16)
	register[uint16, int64](types.Int64, Uint16)
	register[int32, int64](types.Int64, Int32)

	register[uint8, uint64](types.Uint64, Uint8)
	register[int16, uint64](types.Uint64, Int16)
	register[uint16, uint64](types.Uint64, Uint16)
	register[int32, uint64](types.Uint64, Int32)

	// To Int32/UInt32: from {UInt8, Int16, UInt16} and itself.
	register[uint8, int32](types.Int32, Uint8)
	register[int16, int32](types.Int32, Int16)
	register[uint16, int32](types.Int32, Uint16)

	register[uint8, uint32](types.Uint32, Uint8)
	register[int16, uint32](types.Uint32, Int16)
	register[uint16, uint32](types.Uint32, Uint16)

	// To Int16/UInt16: from UInt8 and itself.
	register[uint8, int16](types.Int16, Uint8)
	register[uint8, uint16](types.Uint16, Uint8)

	// To Int8/UInt8: only from itself — already registered above.
}

// coerce widens raw (as produced by decodeNumeric for wire type wire)
// to the element type class's NumericData.Real/Imag expect, or reports
// ErrConversion if the table has no entry for the (class, wire) pair.
func coerce(class types.MatlabType, wire DataType, raw interface{}) (interface{}, error) {
	fn, ok := coercionTable[coercionKey{class, wire}]
	if !ok {
		return nil, fmt.Errorf("%w: cannot store %s data in a %s array", ErrConversion, wire, class)
	}
	return fn(raw), nil
}
